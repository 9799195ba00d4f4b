package session

import "errors"

// ErrNoContentAvailable signals that neither due words nor new words exist,
// so no plan can be built. Callers recover by falling back to another topic
// or article.
var ErrNoContentAvailable = errors.New("no content available for session")

// Role says why a word is part of a session.
type Role string

const (
	// RoleReview marks a word pulled from the due set.
	RoleReview Role = "review"
	// RoleNew marks a word introduced for the first time.
	RoleNew Role = "new"
)

// Entry is one planned question slot: the word it centers on and its role.
type Entry struct {
	Word string
	Role Role
}

// Plan is the composed question set for a single session. It exists only
// for the duration of one generation request and is never persisted.
type Plan struct {
	Entries []Entry
	// CoreWords is the small subset the generated questions must interrelate.
	// Every core word appears in at least one entry.
	CoreWords []string
	// UnderTarget is set when the pools could not fill every slot.
	UnderTarget bool
}

// PlannedWords returns the distinct words referenced by the plan, in first
// appearance order.
func (p *Plan) PlannedWords() []string {
	seen := make(map[string]bool, len(p.Entries))
	var words []string
	for _, e := range p.Entries {
		if !seen[e.Word] {
			seen[e.Word] = true
			words = append(words, e.Word)
		}
	}
	return words
}

// Options tunes session composition.
type Options struct {
	// TargetSize is the number of question slots to fill.
	TargetSize int
	// CoreCount is the preferred number of core words, clamped to [CoreMin, CoreMax].
	CoreCount int
	CoreMin   int
	CoreMax   int
	// MaxPerCore caps how many questions a single core word may receive.
	MaxPerCore int
}

// DefaultOptions returns the standard session shape: 15 questions around
// 4 core words, at most 3 questions each.
func DefaultOptions() Options {
	return Options{
		TargetSize: 15,
		CoreCount:  4,
		CoreMin:    3,
		CoreMax:    5,
		MaxPerCore: 3,
	}
}

// Compose blends words due for reinforcement with candidate new words into
// an ordered session plan. Due words are preferred throughout: they fill the
// core set first and any leftover slots before new words are drawn, so
// reinforcement is never crowded out by novelty.
func Compose(due, fresh []string, opts Options) (*Plan, error) {
	due = dedupe(due, nil)
	fresh = dedupe(fresh, due) // A word already due never counts as new

	if len(due)+len(fresh) == 0 {
		return nil, ErrNoContentAvailable
	}

	k := opts.CoreCount
	if k < opts.CoreMin {
		k = opts.CoreMin
	}
	if k > opts.CoreMax {
		k = opts.CoreMax
	}
	if total := len(due) + len(fresh); k > total {
		k = total
	}

	// Core set: due words first, then new words.
	core := make([]Entry, 0, k)
	for _, w := range due {
		if len(core) == k {
			break
		}
		core = append(core, Entry{Word: w, Role: RoleReview})
	}
	for _, w := range fresh {
		if len(core) == k {
			break
		}
		core = append(core, Entry{Word: w, Role: RoleNew})
	}

	plan := &Plan{CoreWords: make([]string, len(core))}
	for i, e := range core {
		plan.CoreWords[i] = e.Word
	}

	// Fill order: one slot per core word, repeated core questions, extra
	// due words, and only then extra new words.
	plan.Entries = append(plan.Entries, core...)
	for repeat := 1; repeat < opts.MaxPerCore && len(plan.Entries) < opts.TargetSize; repeat++ {
		for _, e := range core {
			if len(plan.Entries) == opts.TargetSize {
				break
			}
			plan.Entries = append(plan.Entries, e)
		}
	}
	coreReview := countRole(core, RoleReview)
	for _, w := range due[coreReview:] {
		if len(plan.Entries) == opts.TargetSize {
			break
		}
		plan.Entries = append(plan.Entries, Entry{Word: w, Role: RoleReview})
	}
	for _, w := range fresh[len(core)-coreReview:] {
		if len(plan.Entries) == opts.TargetSize {
			break
		}
		plan.Entries = append(plan.Entries, Entry{Word: w, Role: RoleNew})
	}

	plan.UnderTarget = len(plan.Entries) < opts.TargetSize
	return plan, nil
}

func countRole(entries []Entry, role Role) int {
	n := 0
	for _, e := range entries {
		if e.Role == role {
			n++
		}
	}
	return n
}

func dedupe(words, exclude []string) []string {
	skip := make(map[string]bool, len(exclude))
	for _, w := range exclude {
		skip[w] = true
	}
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" || skip[w] {
			continue
		}
		skip[w] = true
		out = append(out, w)
	}
	return out
}

package articles

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
)

// Pool manages the directory of article texts that seed new-word questions.
type Pool struct {
	dir string
}

// NewPool creates a pool over the given directory, creating it if missing.
func NewPool(dir string) (*Pool, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create articles directory: %v", err)
	}
	return &Pool{dir: dir}, nil
}

// List returns the names of the stored articles.
func (p *Pool) List() ([]string, error) {
	entries, err := os.ReadDir(p.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read articles directory: %v", err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".txt") {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// Random picks an article at random and returns its name and content.
// The second return is empty when the pool holds no articles.
func (p *Pool) Random() (string, string, error) {
	names, err := p.List()
	if err != nil {
		return "", "", err
	}
	if len(names) == 0 {
		return "", "", nil
	}
	name := names[rand.Intn(len(names))]
	content, err := os.ReadFile(filepath.Join(p.dir, name))
	if err != nil {
		return "", "", fmt.Errorf("failed to read article %s: %v", name, err)
	}
	return name, string(content), nil
}

// Get returns a stored article's content by name. The .txt extension is
// optional.
func (p *Pool) Get(name string) (string, error) {
	if !strings.HasSuffix(name, ".txt") {
		name += ".txt"
	}
	content, err := os.ReadFile(filepath.Join(p.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to read article %s: %v", name, err)
	}
	return string(content), nil
}

// Save stores an article text under the given name.
func (p *Pool) Save(name, content string) error {
	if !strings.HasSuffix(name, ".txt") {
		name += ".txt"
	}
	if err := os.WriteFile(filepath.Join(p.dir, name), []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to save article %s: %v", name, err)
	}
	return nil
}

// ImportFromURL fetches a web page, extracts its readable text and stores it
// in the pool. Returns the stored article name.
func (p *Pool) ImportFromURL(url string) (string, error) {
	resp, err := http.Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	article, err := readability.FromReader(resp.Body, resp.Request.URL)
	if err != nil {
		return "", fmt.Errorf("failed to extract article from %s: %v", url, err)
	}

	name := slugify(article.Title)
	if name == "" {
		name = fmt.Sprintf("article-%d", time.Now().Unix())
	}
	name += ".txt"

	if err := p.Save(name, article.TextContent); err != nil {
		return "", err
	}
	return name, nil
}

func slugify(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			if s := b.String(); len(s) > 0 && s[len(s)-1] != '-' {
				b.WriteByte('-')
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

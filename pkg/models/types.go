package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
)

// StringSet is a deduplicated word list stored as a JSON array column.
type StringSet []string

// NewStringSet builds a sorted, deduplicated set from the given words.
func NewStringSet(words []string) StringSet {
	seen := make(map[string]bool, len(words))
	out := make(StringSet, 0, len(words))
	for _, w := range words {
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Contains reports whether the set holds the given word.
func (s StringSet) Contains(word string) bool {
	for _, w := range s {
		if w == word {
			return true
		}
	}
	return false
}

// Value implements driver.Valuer.
func (s StringSet) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner.
func (s *StringSet) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*s = nil
		return nil
	case []byte:
		return json.Unmarshal(v, (*[]string)(s))
	case string:
		return json.Unmarshal([]byte(v), (*[]string)(s))
	default:
		return fmt.Errorf("cannot scan %T into StringSet", src)
	}
}

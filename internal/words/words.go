// Package words provides the word lists the game engine depends on: the
// dictionary of acceptable guesses and the pool of possible answers.
// Entries are normalized to uppercase on construction; length is not checked
// here so the engine can report mismatches as configuration errors.
package words

import (
	"sort"
	"strings"
)

// Dictionary is an immutable set of words accepted as guesses.
type Dictionary struct {
	set map[string]struct{}
}

// NewDictionary builds a dictionary from the given entries.
// Blank entries are skipped, duplicates collapse.
func NewDictionary(list []string) *Dictionary {
	d := &Dictionary{set: make(map[string]struct{}, len(list))}
	for _, w := range list {
		if w = Normalize(w); w != "" {
			d.set[w] = struct{}{}
		}
	}
	return d
}

// Contains reports whether w is an acceptable guess. Comparison is
// case-insensitive for ASCII input.
func (d *Dictionary) Contains(w string) bool {
	if d == nil {
		return false
	}
	_, ok := d.set[Normalize(w)]
	return ok
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.set)
}

// Words returns the entries in sorted order.
func (d *Dictionary) Words() []string {
	if d == nil {
		return nil
	}
	out := make([]string, 0, len(d.set))
	for w := range d.set {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Pool is an immutable ordered list of words eligible to become the answer.
type Pool struct {
	words []string
}

// NewPool builds an answer pool preserving input order. Blank entries are skipped.
func NewPool(list []string) *Pool {
	p := &Pool{words: make([]string, 0, len(list))}
	for _, w := range list {
		if w = Normalize(w); w != "" {
			p.words = append(p.words, w)
		}
	}
	return p
}

// Len returns the number of entries.
func (p *Pool) Len() int {
	if p == nil {
		return 0
	}
	return len(p.words)
}

// At returns the i-th entry.
func (p *Pool) At(i int) string {
	return p.words[i]
}

// Words returns a copy of the entries.
func (p *Pool) Words() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.words...)
}

// Normalize trims whitespace and uppercases w.
func Normalize(w string) string {
	return strings.ToUpper(strings.TrimSpace(w))
}

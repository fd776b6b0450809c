package textkit

import (
	"strings"
	"sync"
)

// defaultStopwords is the seed list for every new stopword set. It covers
// the most frequent Korean postpositions and light verbs.
var defaultStopwords = []string{
	"이", "가", "은", "는", "을", "를", "에", "의", "과", "와",
	"에서", "로", "으로", "하다", "있다", "되다", "것",
}

// DefaultStopwords returns a copy of the seed stopword list.
func DefaultStopwords() []string {
	out := make([]string, len(defaultStopwords))
	copy(out, defaultStopwords)
	return out
}

// StopwordSet is a mutable, session-scoped stopword configuration. Each
// session owns its own set; there is deliberately no process-wide instance,
// so concurrent sessions never observe each other's edits.
type StopwordSet struct {
	mu      sync.RWMutex
	words   map[string]struct{}
	ordered []string // insertion order, for stable listing
}

// NewStopwordSet returns a set seeded with the default stopwords.
func NewStopwordSet() *StopwordSet {
	s := &StopwordSet{}
	s.reset()
	return s
}

// Add inserts one or more words. Whitespace-separated input adds each word
// individually; duplicates and blank entries are ignored.
func (s *StopwordSet) Add(input string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range strings.Fields(input) {
		if _, exists := s.words[w]; exists {
			continue
		}
		s.words[w] = struct{}{}
		s.ordered = append(s.ordered, w)
	}
}

// Remove deletes a word from the set if present.
func (s *StopwordSet) Remove(word string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.words[word]; !exists {
		return
	}
	delete(s.words, word)
	for i, w := range s.ordered {
		if w == word {
			s.ordered = append(s.ordered[:i], s.ordered[i+1:]...)
			break
		}
	}
}

// Reset restores the default stopword list.
func (s *StopwordSet) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

func (s *StopwordSet) reset() {
	s.words = make(map[string]struct{}, len(defaultStopwords))
	s.ordered = s.ordered[:0]
	for _, w := range defaultStopwords {
		s.words[w] = struct{}{}
		s.ordered = append(s.ordered, w)
	}
}

// Contains reports whether word is in the set.
func (s *StopwordSet) Contains(word string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.words[word]
	return ok
}

// Words returns the current stopwords in insertion order.
func (s *StopwordSet) Words() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.ordered))
	copy(out, s.ordered)
	return out
}

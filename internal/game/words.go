package game

import (
	"bufio"
	"crypto/rand"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"sort"
	"strings"
	"sync"
)

//go:embed answers.txt
var embeddedAnswers string

//go:embed allowed.txt
var embeddedAllowed string

// WordLength is the number of letters in every answer and guess.
const WordLength = 5

// ErrEmptyWordList is returned when a word source yields no usable words.
var ErrEmptyWordList = errors.New("word list has no valid words")

// WordList holds candidate answers and the set of accepted guesses.
// Allowed always includes every answer.
type WordList struct {
	answers []string
	allowed map[string]struct{}
}

var (
	defaultOnce  sync.Once
	defaultWords *WordList
)

// DefaultWordList returns the embedded word list
func DefaultWordList() *WordList {
	defaultOnce.Do(func() {
		answers := parseWords(strings.NewReader(embeddedAnswers))
		extra := parseWords(strings.NewReader(embeddedAllowed))
		defaultWords = newWordList(answers, extra)
	})
	return defaultWords
}

// LoadWordList reads a newline separated list of words from path.
// Blank lines, '#' comments and words that are not five ASCII letters are
// skipped. Every loaded word is both an answer and an allowed guess.
func LoadWordList(path string) (*WordList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()

	words := parseWords(f)
	if len(words) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyWordList)
	}
	return newWordList(words, nil), nil
}

// NewWordList builds a list from explicit answers; extra words are accepted
// as guesses only.
func NewWordList(answers []string, extra ...string) (*WordList, error) {
	a := parseWords(strings.NewReader(strings.Join(answers, "\n")))
	if len(a) == 0 {
		return nil, ErrEmptyWordList
	}
	e := parseWords(strings.NewReader(strings.Join(extra, "\n")))
	return newWordList(a, e), nil
}

func newWordList(answers, extra []string) *WordList {
	wl := &WordList{allowed: make(map[string]struct{}, len(answers)+len(extra))}
	for _, w := range answers {
		if _, dup := wl.allowed[w]; dup {
			continue
		}
		wl.allowed[w] = struct{}{}
		wl.answers = append(wl.answers, w)
	}
	for _, w := range extra {
		wl.allowed[w] = struct{}{}
	}
	sort.Strings(wl.answers)
	return wl
}

func parseWords(r io.Reader) []string {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.ToLower(strings.TrimSpace(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if len(w) != WordLength || !isAlpha(w) {
			continue
		}
		out = append(out, w)
	}
	return out
}

// Random returns a uniformly chosen answer
func (wl *WordList) Random() string {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(wl.answers))))
	if err != nil {
		return wl.answers[0]
	}
	return wl.answers[n.Int64()]
}

// Allowed reports whether w is an accepted guess. Case-insensitive.
func (wl *WordList) Allowed(w string) bool {
	_, ok := wl.allowed[strings.ToLower(w)]
	return ok
}

// IsAnswer reports whether w is one of the candidate answers
func (wl *WordList) IsAnswer(w string) bool {
	w = strings.ToLower(w)
	i := sort.SearchStrings(wl.answers, w)
	return i < len(wl.answers) && wl.answers[i] == w
}

// Len returns the number of candidate answers
func (wl *WordList) Len() int {
	return len(wl.answers)
}

// isAlpha checks that a string consists only of lowercase a-z
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

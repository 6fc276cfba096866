// Package bank holds the question bank: the immutable set of multiple-choice
// questions a quiz session draws from. Records are validated once at load
// time; everything downstream can assume a well-formed bank.
package bank

import (
	"fmt"
	"sort"
	"strings"
)

// Difficulty is a question's difficulty level. The zero value means the
// question declares no difficulty (and, when used as a filter, no constraint).
type Difficulty string

const (
	DifficultyAny    Difficulty = ""
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Difficulties lists the selectable levels in menu order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty maps a raw string to its canonical level, ignoring case.
// Returns false for anything that is not a known level or empty.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, true
	case "medium":
		return DifficultyMedium, true
	case "hard":
		return DifficultyHard, true
	}
	return DifficultyAny, false
}

// Option is one answer choice, addressed by its single-letter label.
type Option struct {
	Letter string `json:"letter"`
	Text   string `json:"text"`
}

// Question is one multiple-choice question. Immutable once loaded.
// Option letters are unique within a question and stored uppercase;
// Answer always names one of them.
type Question struct {
	Text       string     `json:"question"`
	Options    []Option   `json:"options"`
	Answer     string     `json:"correct_answer"`
	Category   string     `json:"category,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
}

// HasOption reports whether letter names one of the question's options,
// ignoring case.
func (q Question) HasOption(letter string) bool {
	_, ok := q.OptionText(letter)
	return ok
}

// OptionText returns the text of the option named by letter, ignoring case.
func (q Question) OptionText(letter string) (string, bool) {
	upper := strings.ToUpper(letter)
	for _, opt := range q.Options {
		if opt.Letter == upper {
			return opt.Text, true
		}
	}
	return "", false
}

// Bank is a validated, immutable question collection.
type Bank struct {
	questions  []Question
	categories []string
}

// New validates records and builds a Bank. The first malformed record aborts
// the load with a *FormatError describing the entry and the violated rule.
// An empty record set is a valid (empty) bank.
func New(records []Question) (*Bank, error) {
	questions := make([]Question, len(records))
	seen := make(map[string]struct{})
	for i, rec := range records {
		q, err := normalizeQuestion(i, rec)
		if err != nil {
			return nil, err
		}
		questions[i] = q
		if q.Category != "" {
			seen[q.Category] = struct{}{}
		}
	}

	categories := make([]string, 0, len(seen))
	for c := range seen {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	return &Bank{questions: questions, categories: categories}, nil
}

// Questions returns a copy of the bank's questions in load order.
func (b *Bank) Questions() []Question {
	out := make([]Question, len(b.questions))
	copy(out, b.questions)
	return out
}

// Categories returns the distinct category names, sorted. Questions without
// a category contribute nothing.
func (b *Bank) Categories() []string {
	out := make([]string, len(b.categories))
	copy(out, b.categories)
	return out
}

// Len returns the number of questions in the bank.
func (b *Bank) Len() int { return len(b.questions) }

// normalizeQuestion validates one record and returns it with option letters,
// the correct answer, and the difficulty in canonical form.
func normalizeQuestion(index int, rec Question) (Question, error) {
	if strings.TrimSpace(rec.Text) == "" {
		return Question{}, &FormatError{Index: index, Field: "question", Reason: "question text is empty"}
	}
	if len(rec.Options) < 2 {
		return Question{}, &FormatError{Index: index, Field: "options", Reason: "a question needs at least two options"}
	}

	options := make([]Option, len(rec.Options))
	letters := make(map[string]struct{}, len(rec.Options))
	for j, opt := range rec.Options {
		letter := strings.ToUpper(strings.TrimSpace(opt.Letter))
		if len(letter) != 1 {
			return Question{}, &FormatError{Index: index, Field: "options", Reason: "option letters must be a single character"}
		}
		if strings.TrimSpace(opt.Text) == "" {
			return Question{}, &FormatError{Index: index, Field: "options", Reason: "option " + letter + " has no text"}
		}
		if _, dup := letters[letter]; dup {
			return Question{}, &FormatError{Index: index, Field: "options", Reason: "duplicate option letter " + letter}
		}
		letters[letter] = struct{}{}
		options[j] = Option{Letter: letter, Text: opt.Text}
	}

	answer := strings.ToUpper(strings.TrimSpace(rec.Answer))
	if _, ok := letters[answer]; !ok {
		return Question{}, &FormatError{Index: index, Field: "correct_answer", Reason: fmt.Sprintf("correct answer %q is not an option letter", rec.Answer)}
	}

	difficulty := DifficultyAny
	if rec.Difficulty != "" {
		parsed, ok := ParseDifficulty(string(rec.Difficulty))
		if !ok {
			return Question{}, &FormatError{Index: index, Field: "difficulty", Reason: fmt.Sprintf("unknown difficulty %q", string(rec.Difficulty))}
		}
		difficulty = parsed
	}

	return Question{
		Text:       rec.Text,
		Options:    options,
		Answer:     answer,
		Category:   strings.TrimSpace(rec.Category),
		Difficulty: difficulty,
	}, nil
}

package setup

import (
	"math/rand"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/quizdeck/internal/bank"
	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/router"
	sessionscreen "github.com/abhisek/quizdeck/internal/screens/session"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func options() []bank.Option {
	return []bank.Option{
		{Letter: "A", Text: "first"},
		{Letter: "B", Text: "second"},
	}
}

func testBank(t *testing.T) *bank.Bank {
	t.Helper()
	bnk, err := bank.New([]bank.Question{
		{Text: "G1", Options: options(), Answer: "A", Category: "Geography", Difficulty: bank.DifficultyEasy},
		{Text: "G2", Options: options(), Answer: "B", Category: "Geography", Difficulty: bank.DifficultyEasy},
		{Text: "S1", Options: options(), Answer: "A", Category: "Science", Difficulty: bank.DifficultyHard},
	})
	if err != nil {
		t.Fatal(err)
	}
	return bnk
}

func testSetup(t *testing.T) *SetupScreen {
	t.Helper()
	return New(testBank(t), quiz.DefaultSettings(), rand.New(rand.NewSource(1)), zap.NewNop())
}

func TestSetupScreen_CategoryStepFirst(t *testing.T) {
	s := testSetup(t)
	if s.step != stepCategory {
		t.Fatalf("step = %v, want category step", s.step)
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "Available Categories") {
		t.Error("expected category heading")
	}
	if !strings.Contains(view, "All Categories") {
		t.Error("expected the All Categories entry")
	}
}

func TestSetupScreen_SkipsCategoryStepWithoutCategories(t *testing.T) {
	bnk, err := bank.New([]bank.Question{
		{Text: "Q1", Options: options(), Answer: "A"},
	})
	if err != nil {
		t.Fatal(err)
	}
	s := New(bnk, quiz.DefaultSettings(), rand.New(rand.NewSource(1)), zap.NewNop())
	if s.step != stepDifficulty {
		t.Fatalf("step = %v, want difficulty step for an uncategorized bank", s.step)
	}
}

func TestSetupScreen_NumberKeysWalkTheSteps(t *testing.T) {
	s := testSetup(t)

	// 1 picks Geography (categories are sorted).
	s.Update(keyPress('1'))
	if s.step != stepDifficulty {
		t.Fatalf("step = %v, want difficulty step", s.step)
	}
	if s.category != "Geography" {
		t.Errorf("category = %q, want Geography", s.category)
	}

	// 1 picks Easy.
	s.Update(keyPress('1'))
	if s.step != stepReady {
		t.Fatalf("step = %v, want ready step", s.step)
	}
	if s.difficulty != bank.DifficultyEasy {
		t.Errorf("difficulty = %q, want Easy", s.difficulty)
	}
	if len(s.picked) != 2 {
		t.Errorf("picked = %d questions, want 2", len(s.picked))
	}
	if s.fellBack {
		t.Error("matching filters should not fall back")
	}

	view := s.View(80, 24)
	if !strings.Contains(view, "Ready to Start") {
		t.Error("expected ready heading")
	}
	if !strings.Contains(view, "Questions:   2") {
		t.Error("expected question count in summary")
	}
}

func TestSetupScreen_AllCategoriesEntry(t *testing.T) {
	s := testSetup(t)

	// 3 is the synthetic All Categories entry after two real ones.
	s.Update(keyPress('3'))
	if s.category != "" {
		t.Errorf("category = %q, want empty for All Categories", s.category)
	}
	if s.step != stepDifficulty {
		t.Fatalf("step = %v, want difficulty step", s.step)
	}
}

func TestSetupScreen_FallbackNotice(t *testing.T) {
	s := testSetup(t)

	// Geography has no Hard questions, so the full bank is used instead.
	s.Update(keyPress('1'))
	s.Update(keyPress('3'))

	if !s.fellBack {
		t.Fatal("expected fallback for an empty filter result")
	}
	if len(s.picked) != 3 {
		t.Errorf("picked = %d questions, want the whole bank", len(s.picked))
	}

	view := s.View(80, 24)
	if !strings.Contains(view, "No questions match your selected criteria.") {
		t.Error("expected fallback notice")
	}
	if !strings.Contains(view, "Showing all questions instead.") {
		t.Error("expected fallback continuation line")
	}
}

func TestSetupScreen_EnterStartsQuiz(t *testing.T) {
	s := testSetup(t)
	s.Update(keyPress('1'))
	s.Update(keyPress('1'))

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a start command")
	}
	msg := cmd()
	replaceMsg, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if _, ok := replaceMsg.Screen.(*sessionscreen.SessionScreen); !ok {
		t.Errorf("expected session screen, got %T", replaceMsg.Screen)
	}
}

func TestSetupScreen_EscWalksBack(t *testing.T) {
	s := testSetup(t)
	s.Update(keyPress('1'))
	s.Update(keyPress('1'))

	s.Update(specialKey(tea.KeyEscape))
	if s.step != stepDifficulty {
		t.Fatalf("step = %v, want difficulty after esc from ready", s.step)
	}

	s.Update(specialKey(tea.KeyEscape))
	if s.step != stepCategory {
		t.Fatalf("step = %v, want category after esc from difficulty", s.step)
	}

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected a command leaving the first step")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatalf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestSetupScreen_Title(t *testing.T) {
	s := testSetup(t)
	if s.Title() != "New Quiz" {
		t.Errorf("Title = %q, want %q", s.Title(), "New Quiz")
	}
}

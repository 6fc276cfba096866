package session

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/quizdeck/internal/bank"
	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screens/results"
)

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func testQuestions(n int) []bank.Question {
	qs := make([]bank.Question, n)
	for i := range qs {
		qs[i] = bank.Question{
			Text: fmt.Sprintf("Question %d", i+1),
			Options: []bank.Option{
				{Letter: "A", Text: "first"},
				{Letter: "B", Text: "second"},
				{Letter: "C", Text: "third"},
			},
			Answer:     "B",
			Category:   "Testing",
			Difficulty: bank.DifficultyEasy,
		}
	}
	return qs
}

func testScreen(t *testing.T, n int) (*SessionScreen, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	qs, err := quiz.NewSession(testQuestions(n), quiz.DefaultSettings(), quiz.WithSessionClock(clock.Now))
	if err != nil {
		t.Fatal(err)
	}
	return New(qs, zap.NewNop()), clock
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestSessionScreen_Title(t *testing.T) {
	s, _ := testScreen(t, 3)
	if s.Title() != "Quiz" {
		t.Errorf("Title = %q, want %q", s.Title(), "Quiz")
	}
}

func TestSessionScreen_Status(t *testing.T) {
	s, _ := testScreen(t, 3)
	status := s.Status()
	if !strings.Contains(status, "Q 1/3") {
		t.Errorf("Status = %q, want question counter", status)
	}
	if !strings.Contains(status, "Score 0") {
		t.Errorf("Status = %q, want zero score", status)
	}
}

func TestSessionScreen_SubmitCorrectAnswer(t *testing.T) {
	s, _ := testScreen(t, 3)

	s.input.Model.SetValue("b")
	s.Update(specialKey(tea.KeyEnter))

	if !s.showingFeedback {
		t.Fatal("expected feedback after a valid answer")
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "Correct!") {
		t.Error("expected correct feedback in view")
	}
	if !strings.Contains(view, "Quick answer bonus") {
		t.Error("expected quick bonus line for an instant answer")
	}
}

func TestSessionScreen_SubmitIncorrectAnswer(t *testing.T) {
	s, clock := testScreen(t, 3)

	// Answer outside the quick window.
	clock.Advance(6 * time.Second)
	s.input.Model.SetValue("A")
	s.Update(specialKey(tea.KeyEnter))

	if !s.showingFeedback {
		t.Fatal("expected feedback after a valid answer")
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "Incorrect. The correct answer was B.") {
		t.Error("expected incorrect feedback naming the right answer")
	}
	if strings.Contains(view, "Quick answer bonus") {
		t.Error("slow answer should not show the bonus line")
	}
}

func TestSessionScreen_InvalidInputKeepsPromptOpen(t *testing.T) {
	s, _ := testScreen(t, 3)

	s.input.Model.SetValue("Z")
	s.Update(specialKey(tea.KeyEnter))

	if s.showingFeedback {
		t.Error("invalid input should not resolve the question")
	}
	if s.session.Resolved() != 0 {
		t.Errorf("Resolved = %d, want 0", s.session.Resolved())
	}
	if s.input.Value() != "" {
		t.Errorf("rejected input should be cleared, got %q", s.input.Value())
	}
}

func TestSessionScreen_SkipAdvancesWithoutRecord(t *testing.T) {
	s, _ := testScreen(t, 3)

	s.input.Model.SetValue("s")
	s.Update(specialKey(tea.KeyEnter))

	if s.showingFeedback {
		t.Error("skip should advance without a feedback overlay")
	}
	if s.session.Number() != 2 {
		t.Errorf("Number = %d, want 2", s.session.Number())
	}
	if s.session.Answered() != 0 {
		t.Errorf("Answered = %d, want 0 after skip", s.session.Answered())
	}
}

func TestSessionScreen_TimeoutViaTick(t *testing.T) {
	s, clock := testScreen(t, 3)

	clock.Advance(10 * time.Second)
	s.Update(timerTickMsg(time.Now()))

	if !s.showingFeedback {
		t.Fatal("expected timeout feedback once the deadline passed")
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "Time's up! Moving to next question.") {
		t.Error("expected timeout message in view")
	}

	// Dismiss; the timed-out question leaves no record.
	_, cmd := s.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected dismiss command")
	}
	s.Update(cmd())
	if s.session.Number() != 2 {
		t.Errorf("Number = %d, want 2 after timeout", s.session.Number())
	}
	if s.session.Answered() != 0 {
		t.Errorf("Answered = %d, want 0 after timeout", s.session.Answered())
	}
}

func TestSessionScreen_FeedbackDismissAdvances(t *testing.T) {
	s, _ := testScreen(t, 3)

	s.input.Model.SetValue("B")
	s.Update(specialKey(tea.KeyEnter))

	_, cmd := s.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected dismiss command")
	}
	s.Update(cmd())

	if s.showingFeedback {
		t.Error("feedback should be dismissed")
	}
	if s.session.Number() != 2 {
		t.Errorf("Number = %d, want 2", s.session.Number())
	}
	if s.session.Score() != quiz.CorrectPoints+quiz.QuickBonus {
		t.Errorf("Score = %v, want %v", s.session.Score(), quiz.CorrectPoints+quiz.QuickBonus)
	}
}

func TestSessionScreen_LastQuestionEndsQuiz(t *testing.T) {
	s, _ := testScreen(t, 1)

	s.input.Model.SetValue("B")
	s.Update(specialKey(tea.KeyEnter))

	_, cmd := s.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected dismiss command")
	}
	_, cmd = s.Update(cmd())
	if cmd == nil {
		t.Fatal("expected end-of-quiz command after the last question")
	}
	if _, ok := cmd().(quizEndMsg); !ok {
		t.Fatalf("expected quizEndMsg, got %T", cmd())
	}

	_, cmd = s.Update(quizEndMsg{})
	if cmd == nil {
		t.Fatal("expected navigation command from quiz end")
	}
	msg := cmd()
	replaceMsg, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if _, ok := replaceMsg.Screen.(*results.ResultsScreen); !ok {
		t.Errorf("expected results screen, got %T", replaceMsg.Screen)
	}
}

func TestSessionScreen_QuitConfirm(t *testing.T) {
	s, _ := testScreen(t, 3)

	s.Update(specialKey(tea.KeyEscape))
	if !s.confirmQuit {
		t.Fatal("expected quit confirmation dialog")
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "End the quiz early?") {
		t.Error("expected quit confirmation text")
	}

	// Press N to dismiss.
	s.Update(keyPress('n'))
	if s.confirmQuit {
		t.Error("expected quit confirmation to be dismissed")
	}
}

func TestSessionScreen_QuitConfirm_Yes(t *testing.T) {
	s, _ := testScreen(t, 3)

	s.Update(specialKey(tea.KeyEscape))
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after quit confirmation")
	}
	if _, ok := cmd().(quizEndMsg); !ok {
		t.Fatalf("expected quizEndMsg, got %T", cmd())
	}

	// Ending early reports only what was resolved.
	_, cmd = s.Update(quizEndMsg{})
	msg := cmd()
	replaceMsg, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if _, ok := replaceMsg.Screen.(*results.ResultsScreen); !ok {
		t.Errorf("expected results screen, got %T", replaceMsg.Screen)
	}
	if s.session.Resolved() != 0 {
		t.Errorf("Resolved = %d, want 0 for an immediate quit", s.session.Resolved())
	}
}

func TestSessionScreen_KeyHints(t *testing.T) {
	s, _ := testScreen(t, 3)

	hints := s.KeyHints()
	if len(hints) != 3 {
		t.Errorf("active hints = %d, want 3", len(hints))
	}

	s.Update(specialKey(tea.KeyEscape))
	hints = s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("confirm hints = %d, want 2", len(hints))
	}

	s.Update(keyPress('n'))
	s.input.Model.SetValue("B")
	s.Update(specialKey(tea.KeyEnter))
	hints = s.KeyHints()
	if len(hints) != 1 {
		t.Errorf("feedback hints = %d, want 1", len(hints))
	}
}

package intake

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	convo "github.com/abhisek/lessonforge/internal/intake"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// answer types a value and submits it with Enter.
func answer(s *Screen, value string) tea.Cmd {
	s.input.Model.SetValue(value)
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	return cmd
}

func resize(s *Screen, w, h int) {
	s.Update(tea.WindowSizeMsg{Width: w, Height: h})
}

func TestFlowToConfirmation(t *testing.T) {
	s := New()

	answer(s, "Fractions")
	answer(s, "Math")
	answer(s, "class 5")
	answer(s, "") // empty duration takes the default
	answer(s, "2")

	if s.conv.Stage() != convo.StageConfirm {
		t.Fatalf("stage = %v, want confirm", s.conv.Stage())
	}

	cmd := answer(s, "yes")
	if cmd == nil {
		t.Fatal("expected a quit command after confirmation")
	}
	msg := cmd()
	if _, ok := msg.(tea.QuitMsg); !ok {
		t.Fatalf("expected QuitMsg, got %T", msg)
	}
	if !s.Confirmed() {
		t.Error("screen should report confirmed")
	}

	meta := s.Request()
	if meta.Topic != "Fractions" || meta.Subject != "Math" {
		t.Errorf("collected %q/%q, want Fractions/Math", meta.Topic, meta.Subject)
	}
	if meta.GradeLevel != "5" {
		t.Errorf("grade = %q, want 5", meta.GradeLevel)
	}
	if meta.SessionDurationMinutes != convo.DefaultSessionDuration {
		t.Errorf("duration = %d, want default %d",
			meta.SessionDurationMinutes, convo.DefaultSessionDuration)
	}
	if meta.SessionCount != 2 {
		t.Errorf("sessions = %d, want 2", meta.SessionCount)
	}
}

func TestClarificationKeepsStage(t *testing.T) {
	s := New()
	answer(s, "Fractions")
	answer(s, "Math")

	answer(s, "banana")
	if s.conv.Stage() != convo.StageGrade {
		t.Errorf("stage = %v, want grade after unparseable answer", s.conv.Stage())
	}
	if s.notice == "" {
		t.Error("expected a clarification notice")
	}

	resize(s, 80, 24)
	if !strings.Contains(s.frame(), "between 1 and 12") {
		t.Error("view should show the clarification")
	}

	// A parseable retry clears the notice.
	answer(s, "5")
	if s.notice != "" {
		t.Errorf("notice = %q, want cleared after valid answer", s.notice)
	}
	if s.conv.Stage() != convo.StageDuration {
		t.Errorf("stage = %v, want duration", s.conv.Stage())
	}
}

func TestUnclearConfirmAsksAgain(t *testing.T) {
	s := New()
	answer(s, "Fractions")
	answer(s, "Math")
	answer(s, "5")
	answer(s, "40")
	answer(s, "2")

	answer(s, "maybe")
	if s.conv.Stage() != convo.StageConfirm {
		t.Errorf("stage = %v, want confirm to hold", s.conv.Stage())
	}
	if s.Confirmed() {
		t.Error("unclear answer must not confirm")
	}
	if s.notice == "" {
		t.Error("expected a yes/no clarification")
	}
}

func TestRestartOnNo(t *testing.T) {
	s := New()
	answer(s, "Fractions")
	answer(s, "Math")
	answer(s, "5")
	answer(s, "40")
	answer(s, "2")

	answer(s, "no")
	if s.conv.Stage() != convo.StageTopic {
		t.Errorf("stage = %v, want topic after declining", s.conv.Stage())
	}
	if s.Confirmed() {
		t.Error("declining must not confirm")
	}
	if got := s.Request(); got.Topic != "" {
		t.Errorf("metadata should reset, still has topic %q", got.Topic)
	}
}

func TestEscAborts(t *testing.T) {
	s := New()
	answer(s, "Fractions")

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected a quit command on Esc")
	}
	msg := cmd()
	if _, ok := msg.(tea.QuitMsg); !ok {
		t.Fatalf("expected QuitMsg, got %T", msg)
	}
	if s.Confirmed() {
		t.Error("backing out must not confirm")
	}
}

func TestTypingReachesInput(t *testing.T) {
	s := New()
	s.Update(keyPress('F'))
	s.Update(keyPress('r'))

	if got := s.input.Value(); got != "Fr" {
		t.Errorf("input value = %q, want Fr", got)
	}
}

func TestAnsweredFieldsShown(t *testing.T) {
	s := New()
	resize(s, 80, 24)
	answer(s, "Fractions")

	view := s.frame()
	if !strings.Contains(view, "Fractions") {
		t.Error("view should list the answered topic")
	}
	if !strings.Contains(view, "Step 2 of 5") {
		t.Error("view should show the step counter")
	}
}

func TestTooSmallView(t *testing.T) {
	s := New()
	resize(s, 40, 10)

	if !strings.Contains(s.frame(), "Terminal too small") {
		t.Error("undersized terminal should show the resize message")
	}
}

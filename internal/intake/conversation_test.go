package intake

import (
	"strings"
	"testing"
)

func TestConversation_FullFlow(t *testing.T) {
	c := NewConversation()

	if c.Stage() != StageTopic {
		t.Fatalf("expected topic stage first, got %v", c.Stage())
	}

	steps := []struct {
		input     string
		wantStage Stage
	}{
		{"Fractions", StageSubject},
		{"Math", StageGrade},
		{"5", StageDuration},
		{"40", StageSessions},
		{"2", StageConfirm},
	}
	for _, step := range steps {
		reply, done := c.Advance(step.input)
		if done {
			t.Fatalf("conversation finished early at input %q", step.input)
		}
		if reply == "" {
			t.Fatalf("expected a prompt after input %q", step.input)
		}
		if c.Stage() != step.wantStage {
			t.Fatalf("after %q expected stage %v, got %v", step.input, step.wantStage, c.Stage())
		}
	}

	// The confirmation prompt summarizes every collected field.
	prompt := c.Prompt()
	for _, want := range []string{"Fractions", "Math", "5", "40", "2"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("confirmation missing %q: %s", want, prompt)
		}
	}

	_, done := c.Advance("yes")
	if !done {
		t.Fatal("expected conversation to finish on yes")
	}
	if !c.Done() {
		t.Fatal("Done should report true")
	}

	meta := c.Metadata()
	want := Metadata{
		Topic:                  "Fractions",
		Subject:                "Math",
		GradeLevel:             "5",
		SessionCount:           2,
		SessionDurationMinutes: 40,
	}
	if meta != want {
		t.Fatalf("metadata = %+v, want %+v", meta, want)
	}
}

func TestConversation_EmptyInputTakesDefaults(t *testing.T) {
	c := NewConversation()
	c.Advance("Photosynthesis")
	c.Advance("Science")
	c.Advance("7")
	c.Advance("") // duration default
	c.Advance("") // session count default
	c.Advance("yes")

	meta := c.Metadata()
	if meta.SessionDurationMinutes != DefaultSessionDuration {
		t.Fatalf("expected default duration %d, got %d", DefaultSessionDuration, meta.SessionDurationMinutes)
	}
	if meta.SessionCount != DefaultSessionCount {
		t.Fatalf("expected default session count %d, got %d", DefaultSessionCount, meta.SessionCount)
	}
}

func TestConversation_InvalidInputReprompts(t *testing.T) {
	c := NewConversation()
	c.Advance("Decimals")
	c.Advance("Math")

	// Grade out of bounds keeps the stage.
	reply, done := c.Advance("13")
	if done || c.Stage() != StageGrade {
		t.Fatalf("expected to stay at grade stage, got %v (done=%v)", c.Stage(), done)
	}
	if !strings.Contains(reply, "between 1 and 12") {
		t.Fatalf("expected a clarification, got %q", reply)
	}

	c.Advance("6")

	// Duration below the floor keeps the stage.
	_, _ = c.Advance("5")
	if c.Stage() != StageDuration {
		t.Fatalf("expected to stay at duration stage, got %v", c.Stage())
	}
	c.Advance("45 minutes")
	if c.Metadata().SessionDurationMinutes != 45 {
		t.Fatalf("expected 45 minutes, got %d", c.Metadata().SessionDurationMinutes)
	}

	// Session count above the cap keeps the stage.
	_, _ = c.Advance("11")
	if c.Stage() != StageSessions {
		t.Fatalf("expected to stay at sessions stage, got %v", c.Stage())
	}
	c.Advance("3")
	if c.Stage() != StageConfirm {
		t.Fatalf("expected confirm stage, got %v", c.Stage())
	}
}

func TestConversation_GradeForms(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"7", "7"},
		{"7th", "7"},
		{"class 7", "7"},
		{"Grade 7", "7"},
		{"1st", "1"},
		{"12", "12"},
	}
	for _, tt := range tests {
		c := NewConversation()
		c.Advance("Topic")
		c.Advance("Subject")
		c.Advance(tt.input)
		if c.Metadata().GradeLevel != tt.want {
			t.Errorf("grade input %q parsed to %q, want %q", tt.input, c.Metadata().GradeLevel, tt.want)
		}
	}
}

func TestConversation_DeclineRestarts(t *testing.T) {
	c := NewConversation()
	c.Advance("Fractions")
	c.Advance("Math")
	c.Advance("5")
	c.Advance("40")
	c.Advance("2")

	reply, done := c.Advance("no")
	if done {
		t.Fatal("declining must not finish the conversation")
	}
	if c.Stage() != StageTopic {
		t.Fatalf("expected restart from topic, got %v", c.Stage())
	}
	if c.Metadata() != (Metadata{}) {
		t.Fatalf("expected collected fields cleared, got %+v", c.Metadata())
	}
	if !strings.Contains(reply, "topic") {
		t.Fatalf("expected topic prompt, got %q", reply)
	}
}

func TestConversation_UnclearConfirmation(t *testing.T) {
	c := NewConversation()
	c.Advance("Fractions")
	c.Advance("Math")
	c.Advance("5")
	c.Advance("40")
	c.Advance("2")

	reply, done := c.Advance("maybe")
	if done || c.Stage() != StageConfirm {
		t.Fatalf("expected to stay at confirm, got %v (done=%v)", c.Stage(), done)
	}
	if !strings.Contains(reply, "yes or no") {
		t.Fatalf("expected yes/no clarification, got %q", reply)
	}
}

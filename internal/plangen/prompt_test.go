package plangen

import (
	"strings"
	"testing"

	"github.com/abhisek/lessonforge/internal/intake"
	"github.com/abhisek/lessonforge/internal/transcribe"
)

func TestBuildPlanUserMessage(t *testing.T) {
	req := intake.GenerationRequest{
		Topic:                  "Fractions",
		Subject:                "Math",
		GradeLevel:             "5",
		SessionCount:           2,
		SessionDurationMinutes: 40,
		Transcript: transcribe.Transcript{
			Text:   "I want to teach fractions to my fifth graders",
			Source: transcribe.SourceAudio,
		},
	}

	msg := buildPlanUserMessage(req)

	for _, want := range []string{
		"Topic: Fractions",
		"Subject: Math",
		"Grade: 5",
		"Sessions: 2",
		"Minutes per session: 40",
		"I want to teach fractions to my fifth graders",
		"Plan exactly 2 sessions of 40 minutes each.",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestBuildPlanUserMessage_Deterministic(t *testing.T) {
	req := intake.GenerationRequest{
		Topic:                  "Photosynthesis",
		Subject:                "Science",
		GradeLevel:             "7",
		SessionCount:           3,
		SessionDurationMinutes: 45,
	}
	if buildPlanUserMessage(req) != buildPlanUserMessage(req) {
		t.Fatal("user message must be a pure function of the request")
	}
}

func TestBuildPlanUserMessage_SkipsRedundantTranscript(t *testing.T) {
	req := intake.GenerationRequest{
		Topic:                  "Decimals",
		Subject:                "Math",
		GradeLevel:             "6",
		SessionCount:           1,
		SessionDurationMinutes: 30,
		Transcript:             transcribe.Transcript{Text: "Decimals", Source: transcribe.SourceText},
	}

	msg := buildPlanUserMessage(req)
	if strings.Contains(msg, "verbatim") {
		t.Fatalf("transcript identical to topic should not repeat:\n%s", msg)
	}
}

func TestBuildRepairMessage(t *testing.T) {
	issues := []string{
		"expected exactly 2 sessions, got 3",
		"session 1 is missing a title",
	}

	msg := buildRepairMessage(issues)

	if !strings.Contains(msg, "1. expected exactly 2 sessions, got 3") {
		t.Fatalf("first discrepancy not numbered:\n%s", msg)
	}
	if !strings.Contains(msg, "2. session 1 is missing a title") {
		t.Fatalf("second discrepancy not numbered:\n%s", msg)
	}
	if !strings.Contains(msg, "single JSON object") {
		t.Fatalf("repair message must restate the format contract:\n%s", msg)
	}
}

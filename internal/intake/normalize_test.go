package intake

import (
	"errors"
	"testing"

	"github.com/abhisek/lessonforge/internal/transcribe"
)

func validMetadata() Metadata {
	return Metadata{
		Topic:                  "Fractions",
		Subject:                "Math",
		GradeLevel:             "5",
		SessionCount:           2,
		SessionDurationMinutes: 40,
	}
}

func asValidation(t *testing.T, err error, field string) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got: %T (%v)", err, err)
	}
	if ve.Field != field {
		t.Fatalf("expected field %q, got %q", field, ve.Field)
	}
}

func TestNormalize_HappyPath(t *testing.T) {
	tr := transcribe.Transcript{Text: "Plan fractions for grade five", Source: transcribe.SourceText}
	req, err := Normalize(tr, validMetadata(), DefaultLimits())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Topic != "Fractions" || req.Subject != "Math" || req.GradeLevel != "5" {
		t.Fatalf("unexpected request: %+v", req)
	}
	if req.SessionCount != 2 || req.SessionDurationMinutes != 40 {
		t.Fatalf("unexpected numeric fields: %+v", req)
	}
	if req.Transcript.Text != tr.Text {
		t.Fatalf("expected transcript carried through, got %q", req.Transcript.Text)
	}
}

func TestNormalize_TopicFallsBackToTranscript(t *testing.T) {
	tr := transcribe.Transcript{Text: "  The water cycle  ", Source: transcribe.SourceAudio}
	meta := validMetadata()
	meta.Topic = "   "

	req, err := Normalize(tr, meta, DefaultLimits())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Topic != "The water cycle" {
		t.Fatalf("expected transcript-derived topic, got %q", req.Topic)
	}
}

func TestNormalize_EmptyFields(t *testing.T) {
	t.Run("topic and transcript both empty", func(t *testing.T) {
		meta := validMetadata()
		meta.Topic = ""
		_, err := Normalize(transcribe.Transcript{Text: "   "}, meta, DefaultLimits())
		asValidation(t, err, "topic")
	})

	t.Run("subject whitespace", func(t *testing.T) {
		meta := validMetadata()
		meta.Subject = "  \t "
		_, err := Normalize(transcribe.Transcript{}, meta, DefaultLimits())
		asValidation(t, err, "subject")
	})

	t.Run("grade empty", func(t *testing.T) {
		meta := validMetadata()
		meta.GradeLevel = ""
		_, err := Normalize(transcribe.Transcript{}, meta, DefaultLimits())
		asValidation(t, err, "gradeLevel")
	})
}

func TestNormalize_SessionCountBounds(t *testing.T) {
	tr := transcribe.Transcript{Text: "Fractions"}

	t.Run("zero", func(t *testing.T) {
		meta := validMetadata()
		meta.SessionCount = 0
		_, err := Normalize(tr, meta, DefaultLimits())
		asValidation(t, err, "sessionCount")
	})

	t.Run("negative", func(t *testing.T) {
		meta := validMetadata()
		meta.SessionCount = -3
		_, err := Normalize(tr, meta, DefaultLimits())
		asValidation(t, err, "sessionCount")
	})

	t.Run("at configured max", func(t *testing.T) {
		meta := validMetadata()
		meta.SessionCount = 10
		if _, err := Normalize(tr, meta, DefaultLimits()); err != nil {
			t.Fatalf("max should be accepted: %v", err)
		}
	})

	t.Run("one past configured max", func(t *testing.T) {
		meta := validMetadata()
		meta.SessionCount = 11
		_, err := Normalize(tr, meta, DefaultLimits())
		asValidation(t, err, "sessionCount")
	})

	t.Run("custom limit", func(t *testing.T) {
		meta := validMetadata()
		meta.SessionCount = 3
		_, err := Normalize(tr, meta, Limits{MaxSessions: 2})
		asValidation(t, err, "sessionCount")
	})

	t.Run("zero limit means default", func(t *testing.T) {
		meta := validMetadata()
		meta.SessionCount = 10
		if _, err := Normalize(tr, meta, Limits{}); err != nil {
			t.Fatalf("default max should apply: %v", err)
		}
	})
}

func TestNormalize_DurationBounds(t *testing.T) {
	tr := transcribe.Transcript{Text: "Fractions"}

	for _, minutes := range []int{0, -40} {
		meta := validMetadata()
		meta.SessionDurationMinutes = minutes
		_, err := Normalize(tr, meta, DefaultLimits())
		asValidation(t, err, "sessionDurationMinutes")
	}
}

func TestNormalize_Pure(t *testing.T) {
	tr := transcribe.Transcript{Text: "Decimals", Source: transcribe.SourceText}
	meta := validMetadata()

	first, err1 := Normalize(tr, meta, DefaultLimits())
	second, err2 := Normalize(tr, meta, DefaultLimits())
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if first != second {
		t.Fatalf("normalize is not deterministic: %+v vs %+v", first, second)
	}
}

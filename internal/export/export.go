// Package export renders lesson plans into portable artifacts. Both formats
// serialize the same linear layout, and rendering is deterministic: the same
// plan and format always produce byte-identical output.
package export

import (
	"fmt"
	"strings"

	"github.com/abhisek/lessonforge/internal/lessonplan"
)

// Format selects an artifact type.
type Format string

const (
	// FormatDocument is a minimal OOXML .docx.
	FormatDocument Format = "document"
	// FormatPrintable is a self-contained print-styled HTML page.
	FormatPrintable Format = "printable"
)

// ParseFormat maps user input to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatDocument:
		return FormatDocument, nil
	case FormatPrintable:
		return FormatPrintable, nil
	}
	return "", fmt.Errorf("unknown export format %q (want document or printable)", s)
}

// Extension returns the file extension for the format, without the dot.
func (f Format) Extension() string {
	if f == FormatDocument {
		return "docx"
	}
	return "html"
}

// MediaType returns the MIME type artifacts of this format are served as.
func (f Format) MediaType() string {
	if f == FormatDocument {
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	}
	return "text/html; charset=utf-8"
}

// Artifact is a rendered export. Derived on demand; the plan stays the
// source of truth.
type Artifact struct {
	Format   Format
	Bytes    []byte
	Filename string
}

// EmptyPlanError reports an export attempt on a plan without sessions.
type EmptyPlanError struct {
	PlanID string
}

func (e *EmptyPlanError) Error() string {
	return fmt.Sprintf("export: plan %q has no sessions", e.PlanID)
}

// Render produces the artifact for a plan. A plan without sessions yields
// an EmptyPlanError rather than a degenerate artifact.
func Render(plan *lessonplan.LessonPlan, format Format) (Artifact, error) {
	if plan == nil {
		return Artifact{}, &EmptyPlanError{}
	}
	if len(plan.Sessions) == 0 {
		return Artifact{}, &EmptyPlanError{PlanID: plan.ID}
	}

	layout := buildLayout(plan)

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatDocument:
		data, err = renderDocument(layout)
	case FormatPrintable:
		data, err = renderPrintable(layout)
	default:
		return Artifact{}, fmt.Errorf("unknown export format %q", format)
	}
	if err != nil {
		return Artifact{}, err
	}

	return Artifact{
		Format:   format,
		Bytes:    data,
		Filename: fmt.Sprintf("lesson_plan_%s.%s", plan.ID, format.Extension()),
	}, nil
}

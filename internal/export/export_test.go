package export

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/lessonforge/internal/intake"
	"github.com/abhisek/lessonforge/internal/lessonplan"
)

func testPlan() *lessonplan.LessonPlan {
	return &lessonplan.LessonPlan{
		ID:        "abcd1234",
		Title:     "Fractions from the Ground Up",
		CreatedAt: time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
		Request: intake.GenerationRequest{
			Topic:                  "Fractions",
			Subject:                "Math",
			GradeLevel:             "5",
			SessionCount:           2,
			SessionDurationMinutes: 40,
		},
		Sessions: []lessonplan.Session{
			{
				Index:      1,
				Title:      "Understanding Halves",
				Objectives: []string{"Recognize one half of a shape"},
				Activities: []lessonplan.Activity{
					{Title: "Paper folding", Description: "Fold paper into halves.", EstimatedMinutes: 20},
				},
				Worksheet: &lessonplan.Worksheet{Questions: []lessonplan.Question{
					{Prompt: "Shade half of each shape.", AnswerKeyHint: "Any half counts"},
					{Prompt: "Circle the fraction one half."},
				}},
			},
			{
				Index:      2,
				Title:      "Understanding Quarters",
				Objectives: []string{"Recognize one quarter of a shape"},
			},
		},
	}
}

func TestRender_DocumentByteIdentical(t *testing.T) {
	plan := testPlan()
	first, err := Render(plan, FormatDocument)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Render(plan, FormatDocument)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(first.Bytes, second.Bytes) {
		t.Fatal("document render is not byte-identical across calls")
	}
	if first.Filename != "lesson_plan_abcd1234.docx" {
		t.Fatalf("unexpected filename %q", first.Filename)
	}
}

func TestRender_PrintableByteIdentical(t *testing.T) {
	plan := testPlan()
	first, err := Render(plan, FormatPrintable)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Render(plan, FormatPrintable)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(first.Bytes, second.Bytes) {
		t.Fatal("printable render is not byte-identical across calls")
	}
	if first.Filename != "lesson_plan_abcd1234.html" {
		t.Fatalf("unexpected filename %q", first.Filename)
	}
}

func TestRender_EmptyPlan(t *testing.T) {
	plan := testPlan()
	plan.Sessions = nil

	_, err := Render(plan, FormatDocument)
	var empty *EmptyPlanError
	if !errors.As(err, &empty) {
		t.Fatalf("expected EmptyPlanError, got %T (%v)", err, err)
	}
	if empty.PlanID != "abcd1234" {
		t.Fatalf("unexpected plan id %q", empty.PlanID)
	}
}

func TestRender_DocumentPackage(t *testing.T) {
	artifact, err := Render(testPlan(), FormatDocument)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(artifact.Bytes), int64(len(artifact.Bytes)))
	if err != nil {
		t.Fatalf("artifact is not a zip: %v", err)
	}

	wantOrder := []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/_rels/document.xml.rels",
		"word/document.xml",
		"word/styles.xml",
	}
	if len(zr.File) != len(wantOrder) {
		t.Fatalf("expected %d entries, got %d", len(wantOrder), len(zr.File))
	}
	for i, f := range zr.File {
		if f.Name != wantOrder[i] {
			t.Fatalf("entry %d is %q, want %q", i, f.Name, wantOrder[i])
		}
	}

	rc, err := zr.Open("word/document.xml")
	if err != nil {
		t.Fatalf("open document.xml: %v", err)
	}
	defer rc.Close()
	doc, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read document.xml: %v", err)
	}

	for _, want := range []string{
		"Fractions from the Ground Up",
		"Session 1: Understanding Halves",
		"Session 2: Understanding Quarters",
		"Learning Objectives",
		"Shade half of each shape.",
		"Suggested Resources",
	} {
		if !strings.Contains(string(doc), want) {
			t.Errorf("document.xml missing %q", want)
		}
	}
}

func TestRender_PrintablePage(t *testing.T) {
	artifact, err := Render(testPlan(), FormatPrintable)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	page := string(artifact.Bytes)
	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Fractions from the Ground Up</title>",
		"Session 1: Understanding Halves",
		"Session 2: Understanding Quarters",
		"https://www.youtube.com/",
		"@media print",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("printable page missing %q", want)
		}
	}
}

func TestLayout_SectionOrder(t *testing.T) {
	l := buildLayout(testPlan())
	if l.Title != "Fractions from the Ground Up" {
		t.Fatalf("unexpected title %q", l.Title)
	}
	if len(l.Blocks) == 0 || l.Blocks[0].Kind != BlockMeta {
		t.Fatal("layout must start with the meta block")
	}

	var headings []string
	for _, blk := range l.Blocks {
		if blk.Kind == BlockHeading && blk.Level == 2 {
			headings = append(headings, blk.Text)
		}
	}
	want := []string{
		"Session 1: Understanding Halves",
		"Session 2: Understanding Quarters",
		"Suggested Resources",
	}
	if len(headings) != len(want) {
		t.Fatalf("unexpected section headings: %v", headings)
	}
	for i := range want {
		if headings[i] != want[i] {
			t.Fatalf("heading %d is %q, want %q", i, headings[i], want[i])
		}
	}
}

func TestLayout_AnswerKeyOnlyWhenHinted(t *testing.T) {
	plan := testPlan()
	l := buildLayout(plan)

	var hints []string
	for _, blk := range l.Blocks {
		if blk.Kind == BlockBullets {
			for _, item := range blk.Items {
				if strings.HasPrefix(item, "Q") && strings.Contains(item, ":") {
					hints = append(hints, item)
				}
			}
		}
	}
	if len(hints) != 1 || hints[0] != "Q1: Any half counts" {
		t.Fatalf("unexpected answer key items: %v", hints)
	}

	plan.Sessions[0].Worksheet.Questions[0].AnswerKeyHint = ""
	l = buildLayout(plan)
	for _, blk := range l.Blocks {
		if blk.Kind == BlockParagraph && blk.Text == "Answer key:" {
			t.Fatal("answer key rendered with no hints present")
		}
	}
}

func TestParseFormat(t *testing.T) {
	cases := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "document", want: FormatDocument},
		{in: "printable", want: FormatPrintable},
		{in: " Document ", want: FormatDocument},
		{in: "PRINTABLE", want: FormatPrintable},
		{in: "pdf", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range cases {
		got, err := ParseFormat(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseFormat(%q) expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFormat(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatExtension(t *testing.T) {
	if got := FormatDocument.Extension(); got != "docx" {
		t.Fatalf("document extension %q", got)
	}
	if got := FormatPrintable.Extension(); got != "html" {
		t.Fatalf("printable extension %q", got)
	}
}

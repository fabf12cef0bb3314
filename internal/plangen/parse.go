package plangen

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/lessonforge/internal/llm"
)

// parsePlan extracts and normalizes a plan from a raw model response.
// Recoverable mismatches (prose framing, markdown fences, missing optional
// fields, empty worksheets) are repaired in place and reported as notes;
// anything the parser cannot repair without guessing content is left for
// the verdict to classify.
func parsePlan(raw []byte) (*StructuredContent, []string, error) {
	payload, found := llm.ExtractJSONObject(raw)
	if !found {
		return nil, nil, fmt.Errorf("response contains no JSON object")
	}

	var notes []string
	if len(payload) != len(strings.TrimSpace(string(raw))) {
		notes = append(notes, "extracted JSON object from surrounding prose")
	}

	var content StructuredContent
	if err := json.Unmarshal(payload, &content); err != nil {
		return nil, nil, fmt.Errorf("parse plan payload: %w", err)
	}

	notes = append(notes, normalizeContent(&content)...)
	return &content, notes, nil
}

// normalizeContent fills missing optional fields with empty defaults and
// drops empty fragments the model sometimes emits. It returns a note per
// normalization so the verdict can distinguish a clean response from a
// recovered one. Required content is never invented here.
func normalizeContent(content *StructuredContent) []string {
	var notes []string

	content.Title = strings.TrimSpace(content.Title)

	if content.Sessions == nil {
		content.Sessions = []SessionContent{}
	}

	for i := range content.Sessions {
		s := &content.Sessions[i]
		n := i + 1

		s.Title = strings.TrimSpace(s.Title)

		var objectives []string
		for _, o := range s.Objectives {
			o = strings.TrimSpace(o)
			if o == "" {
				notes = append(notes, fmt.Sprintf("session %d: dropped empty objective", n))
				continue
			}
			objectives = append(objectives, o)
		}
		if objectives == nil {
			objectives = []string{}
		}
		s.Objectives = objectives

		if s.Activities == nil {
			s.Activities = []ActivityContent{}
			notes = append(notes, fmt.Sprintf("session %d: missing activities defaulted to empty", n))
		}
		for j := range s.Activities {
			a := &s.Activities[j]
			a.Title = strings.TrimSpace(a.Title)
			if a.EstimatedMinutes < 0 {
				notes = append(notes, fmt.Sprintf("session %d: clamped negative activity minutes", n))
				a.EstimatedMinutes = 0
			}
		}

		if s.Worksheet != nil {
			var questions []QuestionContent
			for _, q := range s.Worksheet.Questions {
				q.Prompt = strings.TrimSpace(q.Prompt)
				if q.Prompt == "" {
					notes = append(notes, fmt.Sprintf("session %d: dropped worksheet question with empty prompt", n))
					continue
				}
				questions = append(questions, q)
			}
			if len(questions) == 0 {
				notes = append(notes, fmt.Sprintf("session %d: dropped empty worksheet", n))
				s.Worksheet = nil
			} else {
				s.Worksheet.Questions = questions
			}
		}
	}

	return notes
}

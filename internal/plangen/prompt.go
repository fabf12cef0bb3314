package plangen

import (
	"fmt"
	"strings"

	"github.com/abhisek/lessonforge/internal/intake"
)

const planSystemPrompt = `You are an experienced curriculum planner creating multi-session lesson plans for school teachers.

Rules:
- Produce exactly the number of sessions requested. Never more, never fewer.
- Every session needs a concise title and at least one concrete, measurable learning objective.
- Break each session into ordered activities whose estimated minutes roughly add up to the session duration.
- Keep language appropriate for the given grade level and free of jargon.
- Worksheet questions must be answerable from the session's activities. Include a short answer key hint where it helps the teacher; otherwise leave it empty.
- When no worksheet fits a session, return it with an empty questions array.
- Respond with a single JSON object matching the declared schema. No markdown fences, no commentary.`

// buildPlanUserMessage derives the instruction payload purely from request
// fields, so the same request always produces the same contract.
func buildPlanUserMessage(req intake.GenerationRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", req.Topic)
	fmt.Fprintf(&b, "Subject: %s\n", req.Subject)
	fmt.Fprintf(&b, "Grade: %s\n", req.GradeLevel)
	fmt.Fprintf(&b, "Sessions: %d\n", req.SessionCount)
	fmt.Fprintf(&b, "Minutes per session: %d\n", req.SessionDurationMinutes)

	if t := strings.TrimSpace(req.Transcript.Text); t != "" && t != req.Topic {
		fmt.Fprintf(&b, "\nThe teacher's request, verbatim:\n%s\n", t)
	}

	fmt.Fprintf(&b, "\nPlan exactly %d sessions of %d minutes each.",
		req.SessionCount, req.SessionDurationMinutes)

	return b.String()
}

// buildRepairMessage names each discrepancy found in the previous response
// so the model can correct it without regenerating unrelated content.
func buildRepairMessage(issues []string) string {
	var b strings.Builder

	b.WriteString("Your previous response did not satisfy the contract:\n")
	for i, issue := range issues {
		fmt.Fprintf(&b, "%d. %s\n", i+1, issue)
	}
	b.WriteString("\nReturn the corrected lesson plan as a single JSON object matching the schema. Fix only the problems listed; keep everything else unchanged.")

	return b.String()
}

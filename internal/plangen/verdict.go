package plangen

import (
	"fmt"
	"strings"
)

// VerdictKind classifies parsed generation output.
type VerdictKind int

const (
	// VerdictValid means the content satisfies the contract untouched.
	VerdictValid VerdictKind = iota

	// VerdictRecoverable means the parser repaired the content without
	// guessing; the issues list records what it changed.
	VerdictRecoverable

	// VerdictUnrecoverable means required content is wrong or missing and
	// only a repair round-trip can fix it.
	VerdictUnrecoverable
)

func (k VerdictKind) String() string {
	switch k {
	case VerdictValid:
		return "valid"
	case VerdictRecoverable:
		return "recoverable"
	case VerdictUnrecoverable:
		return "unrecoverable"
	default:
		return fmt.Sprintf("verdict(%d)", int(k))
	}
}

// Verdict is the tagged result of validating parsed content against the
// request contract.
type Verdict struct {
	Kind   VerdictKind
	Issues []string
}

// Detail joins the issues into one diagnostic string.
func (v Verdict) Detail() string {
	return strings.Join(v.Issues, "; ")
}

// evaluate classifies content against the contract for the requested
// session count. parseNotes are the recoverable repairs already applied by
// the parser; they downgrade a clean pass to VerdictRecoverable.
//
// Unrecoverable conditions name their exact discrepancy because the repair
// prompt quotes them back to the model verbatim.
func evaluate(content *StructuredContent, sessionCount int, parseNotes []string) Verdict {
	var issues []string

	if len(content.Sessions) != sessionCount {
		issues = append(issues, fmt.Sprintf(
			"expected exactly %d sessions, got %d", sessionCount, len(content.Sessions)))
	}

	for i, s := range content.Sessions {
		n := i + 1
		if s.Title == "" {
			issues = append(issues, fmt.Sprintf("session %d is missing a title", n))
		}
		if len(s.Objectives) == 0 {
			issues = append(issues, fmt.Sprintf("session %d has no learning objectives", n))
		}
	}

	if len(issues) > 0 {
		return Verdict{Kind: VerdictUnrecoverable, Issues: issues}
	}
	if len(parseNotes) > 0 {
		return Verdict{Kind: VerdictRecoverable, Issues: parseNotes}
	}
	return Verdict{Kind: VerdictValid}
}

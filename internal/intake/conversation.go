package intake

import (
	"fmt"
	"strconv"
	"strings"
)

// Stage identifies which field the conversation is currently collecting.
type Stage int

const (
	StageTopic Stage = iota
	StageSubject
	StageGrade
	StageDuration
	StageSessions
	StageConfirm
	StageDone
)

// Conversational bounds. The normalizer enforces only the hard request
// limits; these tighter bounds shape what the interactive front door
// accepts.
const (
	MinGrade = 1
	MaxGrade = 12

	MinSessionDuration     = 15
	MaxSessionDuration     = 90
	DefaultSessionDuration = 40

	MinConversationSessions = 1
	MaxConversationSessions = 10
	DefaultSessionCount     = 4
)

// Conversation elicits lesson plan metadata one field at a time. It is a
// pure state machine: Advance consumes one user input and returns the next
// prompt. It never invents values the user did not give, with two
// documented exceptions (empty duration and empty session count take the
// defaults).
type Conversation struct {
	stage Stage
	meta  Metadata
}

// NewConversation starts a conversation at the topic stage.
func NewConversation() *Conversation {
	return &Conversation{stage: StageTopic}
}

// Stage returns the field currently being collected.
func (c *Conversation) Stage() Stage { return c.stage }

// Done reports whether the conversation has collected and confirmed all
// fields.
func (c *Conversation) Done() bool { return c.stage == StageDone }

// Metadata returns the fields collected so far. Complete only once Done.
func (c *Conversation) Metadata() Metadata { return c.meta }

// Prompt returns the question for the current stage.
func (c *Conversation) Prompt() string {
	switch c.stage {
	case StageTopic:
		return "What topic should the lesson plan cover?"
	case StageSubject:
		return "Which subject does this fall under?"
	case StageGrade:
		return fmt.Sprintf("Which grade or class is this for? (%d-%d)", MinGrade, MaxGrade)
	case StageDuration:
		return fmt.Sprintf("How many minutes per session? (%d-%d, enter for %d)",
			MinSessionDuration, MaxSessionDuration, DefaultSessionDuration)
	case StageSessions:
		return fmt.Sprintf("How many sessions? (%d-%d, enter for %d)",
			MinConversationSessions, MaxConversationSessions, DefaultSessionCount)
	case StageConfirm:
		return c.summary()
	default:
		return ""
	}
}

// Advance consumes one user input for the current stage. The reply is
// either the next stage's prompt or a clarification when the input did not
// parse; done is true once the user confirms the collected request.
func (c *Conversation) Advance(input string) (reply string, done bool) {
	input = strings.TrimSpace(input)

	switch c.stage {
	case StageTopic:
		if input == "" {
			return "Please give me a topic to plan for.", false
		}
		c.meta.Topic = input
		c.stage = StageSubject

	case StageSubject:
		if input == "" {
			return "Please name the subject, like Math or Science.", false
		}
		c.meta.Subject = input
		c.stage = StageGrade

	case StageGrade:
		grade, ok := parseGrade(input)
		if !ok {
			return fmt.Sprintf("I need a grade between %d and %d, like \"7\" or \"class 7\".",
				MinGrade, MaxGrade), false
		}
		c.meta.GradeLevel = strconv.Itoa(grade)
		c.stage = StageDuration

	case StageDuration:
		minutes, ok := parseDuration(input)
		if !ok {
			return fmt.Sprintf("Session length must be a number of minutes between %d and %d.",
				MinSessionDuration, MaxSessionDuration), false
		}
		c.meta.SessionDurationMinutes = minutes
		c.stage = StageSessions

	case StageSessions:
		count, ok := parseSessions(input)
		if !ok {
			return fmt.Sprintf("Session count must be a whole number between %d and %d.",
				MinConversationSessions, MaxConversationSessions), false
		}
		c.meta.SessionCount = count
		c.stage = StageConfirm

	case StageConfirm:
		switch parseConfirm(input) {
		case confirmYes:
			c.stage = StageDone
			return "", true
		case confirmNo:
			c.meta = Metadata{}
			c.stage = StageTopic
		default:
			return "Please answer yes or no.", false
		}

	case StageDone:
		return "", true
	}

	return c.Prompt(), c.stage == StageDone
}

func (c *Conversation) summary() string {
	return fmt.Sprintf(
		"Topic: %s\nSubject: %s\nGrade: %s\nDuration: %d minutes\nSessions: %d\n\nGenerate this plan? (yes/no)",
		c.meta.Topic, c.meta.Subject, c.meta.GradeLevel,
		c.meta.SessionDurationMinutes, c.meta.SessionCount,
	)
}

// parseGrade accepts "7", "7th", "class 7", "grade 7" within bounds.
func parseGrade(input string) (int, bool) {
	s := strings.ToLower(strings.TrimSpace(input))
	s = strings.TrimPrefix(s, "class")
	s = strings.TrimPrefix(s, "grade")
	s = strings.TrimSpace(s)
	for _, suffix := range []string{"st", "nd", "rd", "th"} {
		if v, ok := strings.CutSuffix(s, suffix); ok {
			s = v
			break
		}
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < MinGrade || n > MaxGrade {
		return 0, false
	}
	return n, true
}

// parseDuration accepts a bare minute count, tolerating a "min"/"minutes"
// suffix. Empty input takes the default.
func parseDuration(input string) (int, bool) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return DefaultSessionDuration, true
	}
	for _, suffix := range []string{"minutes", "mins", "min"} {
		if v, ok := strings.CutSuffix(s, suffix); ok {
			s = v
			break
		}
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < MinSessionDuration || n > MaxSessionDuration {
		return 0, false
	}
	return n, true
}

// parseSessions accepts a bare session count. Empty input takes the default.
func parseSessions(input string) (int, bool) {
	s := strings.TrimSpace(input)
	if s == "" {
		return DefaultSessionCount, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < MinConversationSessions || n > MaxConversationSessions {
		return 0, false
	}
	return n, true
}

type confirmAnswer int

const (
	confirmUnclear confirmAnswer = iota
	confirmYes
	confirmNo
)

func parseConfirm(input string) confirmAnswer {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "yes", "y", "ok", "sure", "yeah", "yep", "confirm":
		return confirmYes
	case "no", "n", "nope":
		return confirmNo
	default:
		return confirmUnclear
	}
}

// Package intake renders the staged intake conversation as a full screen
// terminal form. One field is collected per step; the conversation state
// machine decides what to ask next and whether an answer parsed.
package intake

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	convo "github.com/abhisek/lessonforge/internal/intake"
	"github.com/abhisek/lessonforge/internal/ui/components"
	"github.com/abhisek/lessonforge/internal/ui/layout"
	"github.com/abhisek/lessonforge/internal/ui/theme"
)

const (
	screenTitle = "New Lesson Plan"

	// cardWidth is the inner width every card line wraps to.
	cardWidth = 56

	// answerLimit caps how much the user can type into one field.
	answerLimit = 120
)

// Screen is the root model for the intake flow. Enter submits the
// current field, Esc backs out of the whole flow. Once the user
// confirms the collected request the program quits and the caller
// reads the result through Confirmed and Request.
type Screen struct {
	conv      *convo.Conversation
	input     components.TextInput
	notice    string
	confirmed bool
	width     int
	height    int
}

// New creates an intake screen positioned at the first question.
func New() *Screen {
	c := convo.NewConversation()
	return &Screen{
		conv:  c,
		input: newStageInput(c.Stage()),
	}
}

// Confirmed reports whether the user confirmed the collected request.
func (s *Screen) Confirmed() bool { return s.confirmed }

// Request returns the collected metadata. Complete only once Confirmed.
func (s *Screen) Request() convo.Metadata { return s.conv.Metadata() }

func (s *Screen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *Screen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *Screen) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return s, tea.Quit

	case "enter":
		return s.submit()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submit feeds the typed answer to the conversation. A stage that did
// not move means the answer failed to parse and the reply says why.
func (s *Screen) submit() (tea.Model, tea.Cmd) {
	before := s.conv.Stage()
	reply, done := s.conv.Advance(s.input.Value())

	if done {
		s.confirmed = true
		return s, tea.Quit
	}

	if s.conv.Stage() == before {
		s.notice = reply
		return s, nil
	}

	s.notice = ""
	s.input = newStageInput(s.conv.Stage())
	return s, s.input.Init()
}

func (s *Screen) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if s.width == 0 || s.height == 0 {
		return v
	}

	v.SetContent(s.frame())
	return v
}

func (s *Screen) frame() string {
	if layout.IsTooSmall(s.width, s.height) {
		return layout.RenderMinSizeMessage(s.width, s.height)
	}

	header := layout.RenderHeader(screenTitle, s.width)
	footer := layout.RenderFooter([]layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Cancel"},
	}, s.width)

	contentHeight := s.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := lipgloss.Place(
		s.width, contentHeight,
		lipgloss.Center, lipgloss.Center,
		s.renderCard(),
	)

	return layout.RenderFrame(header, content, footer, s.width, s.height)
}

func (s *Screen) renderCard() string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(cardWidth).Render("Plan a new lesson"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(cardWidth).Render(s.stepLine()))
	b.WriteString("\n\n")

	for _, line := range s.answeredLines() {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if s.conv.Stage() > convo.StageTopic && s.conv.Stage() < convo.StageConfirm {
		b.WriteString("\n")
	}

	b.WriteString(theme.Body.Width(cardWidth).Render(s.conv.Prompt()))
	b.WriteString("\n\n")
	b.WriteString(s.input.View())

	if s.notice != "" {
		b.WriteString("\n")
		b.WriteString(theme.Invalid.Width(cardWidth).Render("✗ " + s.notice))
	}

	return theme.Card.Render(b.String())
}

// answeredLines lists the fields collected so far. Empty at the
// confirmation stage, where the prompt restates every field anyway.
func (s *Screen) answeredLines() []string {
	if s.conv.Stage() >= convo.StageConfirm {
		return nil
	}

	meta := s.conv.Metadata()
	fields := []struct {
		stage convo.Stage
		label string
		value string
	}{
		{convo.StageTopic, "Topic", meta.Topic},
		{convo.StageSubject, "Subject", meta.Subject},
		{convo.StageGrade, "Grade", meta.GradeLevel},
		{convo.StageDuration, "Minutes", strconv.Itoa(meta.SessionDurationMinutes)},
		{convo.StageSessions, "Sessions", strconv.Itoa(meta.SessionCount)},
	}

	var lines []string
	for _, f := range fields {
		if s.conv.Stage() <= f.stage {
			break
		}
		lines = append(lines,
			theme.Hint.Render(fmt.Sprintf("%-10s", f.label))+
				theme.Body.Render(f.value)+" "+
				theme.Answered.Render("✓"))
	}
	return lines
}

func (s *Screen) stepLine() string {
	switch st := s.conv.Stage(); st {
	case convo.StageConfirm:
		return "Review"
	case convo.StageDone:
		return "Done"
	default:
		return fmt.Sprintf("Step %d of 5", int(st)+1)
	}
}

func newStageInput(stage convo.Stage) components.TextInput {
	placeholder := ""
	switch stage {
	case convo.StageTopic:
		placeholder = "e.g. Fractions"
	case convo.StageSubject:
		placeholder = "e.g. Math"
	case convo.StageGrade:
		placeholder = "e.g. 5 or class 5"
	case convo.StageDuration:
		placeholder = "minutes"
	case convo.StageSessions:
		placeholder = "sessions"
	case convo.StageConfirm:
		placeholder = "yes or no"
	}
	return components.NewTextInput(placeholder, answerLimit)
}

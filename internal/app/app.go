// Package app wires the terminal UI into the command layer.
package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lessonforge/internal/intake"
	intakescreen "github.com/abhisek/lessonforge/internal/screens/intake"
)

// RunIntake walks the user through the intake conversation in a full
// screen form and returns the collected request. confirmed is false
// when the user backed out instead of confirming.
func RunIntake() (meta intake.Metadata, confirmed bool, err error) {
	s := intakescreen.New()
	p := tea.NewProgram(s)
	if _, err := p.Run(); err != nil {
		return intake.Metadata{}, false, err
	}
	return s.Request(), s.Confirmed(), nil
}

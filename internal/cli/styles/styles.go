// Package styles defines the lipgloss styles shared by the CLI renderers.
package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/kadyrovd/delo/internal/models"
)

var (
	TitleStyle    = lipgloss.NewStyle().Bold(true)
	DoneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Strikethrough(true)
	ReminderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	SubtleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	ErrorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	SuccessStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// Checkbox renders the completion marker for a task or subtask.
func Checkbox(done bool) string {
	if done {
		return DoneStyle.Render("[x]")
	}
	return "[ ]"
}

// TaskLine renders a one-line listing entry for a task, mirroring the
// desktop list rows: checkbox, title, reminder marker, subtask progress.
func TaskLine(t *models.Task, progress models.Progress) string {
	title := t.Title
	if t.IsDone {
		title = DoneStyle.Render(title)
	}
	line := fmt.Sprintf("%s %4d  %s", Checkbox(t.IsDone), t.ID, title)
	if t.HasReminder() {
		line += " " + ReminderStyle.Render("(reminder)")
	}
	if progress.Total > 0 {
		line += " " + SubtleStyle.Render(fmt.Sprintf("(%d/%d)", progress.Completed, progress.Total))
	}
	return line
}

// SubtaskLine renders a one-line listing entry for a subtask.
func SubtaskLine(s *models.Subtask) string {
	title := s.Title
	if s.IsDone {
		title = DoneStyle.Render(title)
	}
	return fmt.Sprintf("%s %4d  %s", Checkbox(s.IsDone), s.ID, title)
}

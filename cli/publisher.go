package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/joanpaneque/new-project-script/logger"
)

var (
	startedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("202"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	skipStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFBA08"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// CliStepPublisher prints one line as each step starts and another when it
// finishes, around whatever the child tools write to the shared terminal.
type CliStepPublisher struct {
	logger logger.Logger
}

func NewCliStepPublisher(logger logger.Logger) *CliStepPublisher {
	return &CliStepPublisher{logger: logger}
}

func (p *CliStepPublisher) StepStarted(description string) {
	fmt.Println(startedStyle.Render(description + "..."))
	p.logger.Debug(fmt.Sprintf("Step started: %s", description))
}

func (p *CliStepPublisher) StepCompleted(description string) {
	fmt.Println(doneStyle.Render("✓ " + description))
	p.logger.Debug(fmt.Sprintf("Step completed: %s", description))
}

func (p *CliStepPublisher) StepSkipped(description, reason string) {
	fmt.Println(skipStyle.Render(fmt.Sprintf("! %s skipped: %s", description, reason)))
	p.logger.Warn(fmt.Sprintf("Step skipped: %s (%s)", description, reason))
}

func (p *CliStepPublisher) Error(description string, err error) {
	fmt.Println(errorStyle.Render(fmt.Sprintf("✗ %s: %v", description, err)))
	p.logger.Error(fmt.Sprintf("Step failed: %s: %v", description, err))
}

package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// promptModel collects the project name. The pipeline itself runs after
// the program exits so the child tools keep full ownership of the
// terminal while they stream their own output.
type promptModel struct {
	textInput textinput.Model
	name      string
	aborted   bool
}

func newPromptModel() promptModel {
	ti := textinput.New()
	ti.Placeholder = "my-project"
	ti.Prompt = "Project name: "
	ti.Focus()
	ti.CharLimit = 156
	ti.Width = 80

	return promptModel{textInput: ti}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			m.name = strings.TrimSpace(m.textInput.Value())
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	return m.textInput.View() + "\n(press enter to confirm or esc to quit)\n"
}

func promptProjectName() (string, error) {
	p := tea.NewProgram(newPromptModel())
	result, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := result.(promptModel)
	if !ok {
		return "", fmt.Errorf("unexpected prompt model type")
	}
	if m.aborted {
		return "", nil
	}
	return m.name, nil
}

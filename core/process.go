package core

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ProcessStep invokes one external command and requires a zero exit code.
// The child inherits the orchestrator's standard streams so the operator
// sees the tool's own progress output; nothing is captured or parsed.
type ProcessStep struct {
	Desc    string
	Command string
	Args    []string
	Shell   bool
}

func (s *ProcessStep) Description() string { return s.Desc }

func (s *ProcessStep) Execute(state *State) error {
	return runCommand(state, s.Command, s.Args, s.Shell)
}

// CreateProjectStep runs the framework scaffolder and, on success, moves
// the pipeline's working directory into the generated project root. It is
// the only step that changes WorkDir.
type CreateProjectStep struct {
	Desc string
}

func (s *CreateProjectStep) Description() string { return s.Desc }

func (s *CreateProjectStep) Execute(state *State) error {
	args := []string{"new", state.ProjectName, "--pest", "--boost", "--npm", "--no-interaction"}
	if err := runCommand(state, "laravel", args, true); err != nil {
		return err
	}

	state.WorkDir = filepath.Join(state.WorkDir, state.ProjectName)
	state.Logger.Debug("Working directory is now " + state.WorkDir)
	return nil
}

func runCommand(state *State, command string, args []string, shell bool) error {
	line := command
	if len(args) > 0 {
		line += " " + strings.Join(args, " ")
	}
	state.Logger.Info("Running command: " + line)

	name := command
	if strings.HasPrefix(name, "./") {
		// exec resolves relative paths against the orchestrator's own cwd,
		// not cmd.Dir, so project-local binaries need the full path.
		name = filepath.Join(state.WorkDir, name)
	}

	var cmd *exec.Cmd
	if shell {
		cmd = exec.Command("sh", "-c", line)
	} else {
		cmd = exec.Command(name, args...)
	}
	cmd.Dir = state.WorkDir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ProcessError{Command: line, ExitCode: exitErr.ExitCode()}
		}
		return &ProcessError{Command: line, ExitCode: -1, Err: err}
	}

	state.Logger.Debug(fmt.Sprintf("Command succeeded: %s", line))
	return nil
}

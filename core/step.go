package core

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/joanpaneque/new-project-script/fs"
	"github.com/joanpaneque/new-project-script/logger"
)

type Step interface {
	Description() string
	Execute(state *State) error
}

// State is threaded through every step of a run. WorkDir starts at the
// directory the tool was launched from and is advanced to the project root
// by the step that creates the project; all later steps resolve paths and
// commands against it.
type State struct {
	ProjectName string
	WorkDir     string
	Completed   []string
	FileSystem  *fs.FileSystem
	Logger      logger.Logger
}

// Path resolves a project-relative path against the active working
// directory.
func (s *State) Path(rel string) string {
	return filepath.Join(s.WorkDir, rel)
}

type StepPublisher interface {
	StepStarted(description string)
	StepCompleted(description string)
	StepSkipped(description, reason string)
	Error(description string, err error)
}

type DefaultStepPublisher struct{}

func (p *DefaultStepPublisher) StepStarted(description string)         {}
func (p *DefaultStepPublisher) StepCompleted(description string)       {}
func (p *DefaultStepPublisher) StepSkipped(description, reason string) {}
func (p *DefaultStepPublisher) Error(description string, err error)    {}

// ErrMissingFile marks an edit target that does not exist. Edit steps are
// lenient about missing files because not every generator version produces
// every optional file; the pipeline logs a warning and moves on instead of
// aborting.
var ErrMissingFile = errors.New("target file missing")

// ProcessError reports an external command that exited non-zero or could
// not be launched.
type ProcessError struct {
	Command  string
	ExitCode int
	Err      error
}

func (e *ProcessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("command %q failed to start: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("command %q exited with code %d", e.Command, e.ExitCode)
}

func (e *ProcessError) Unwrap() error { return e.Err }

// IOError reports a failed filesystem operation on a step target.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("file operation on %s failed: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

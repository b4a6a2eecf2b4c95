package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/joanpaneque/new-project-script/fs"
	"github.com/joanpaneque/new-project-script/logger"
)

// Pipeline executes a fixed sequence of provisioning steps. Execution is
// strictly linear and fail-fast: the first fatal error aborts the run and
// nothing already applied is rolled back. A failed run is discarded and
// restarted by the operator on a clean checkout.
type Pipeline struct {
	steps     []Step
	state     *State
	publisher StepPublisher
}

func NewPipeline(steps []Step, filesystem *fs.FileSystem, pub StepPublisher, log logger.Logger) *Pipeline {
	if pub == nil {
		pub = &DefaultStepPublisher{}
	}
	if log == nil {
		log = logger.NewNullLogger()
	}
	return &Pipeline{
		steps: steps,
		state: &State{
			FileSystem: filesystem,
			Logger:     log,
		},
		publisher: pub,
	}
}

func (p *Pipeline) Execute(projectName, workDir string) error {
	p.state.ProjectName = projectName
	p.state.WorkDir = workDir
	p.state.Logger.Debug("Starting pipeline execution")

	for i, step := range p.steps {
		desc := step.Description()
		p.state.Logger.Debug(fmt.Sprintf("Attempting to execute step %d: %s", i, desc))
		p.publisher.StepStarted(desc)

		startTime := time.Now()
		if err := step.Execute(p.state); err != nil {
			if errors.Is(err, ErrMissingFile) {
				p.state.Logger.Warn(fmt.Sprintf("Skipping step %q: %v", desc, err))
				p.publisher.StepSkipped(desc, err.Error())
				continue
			}
			p.state.Logger.Error(fmt.Sprintf("Error executing step %q: %v", desc, err))
			p.publisher.Error(desc, err)
			return err
		}
		duration := time.Since(startTime)
		p.state.Logger.Debug(fmt.Sprintf("Step %q completed in %v", desc, duration))

		p.state.Completed = append(p.state.Completed, desc)
		p.publisher.StepCompleted(desc)
	}

	p.state.Logger.WithField("completed", p.state.Completed).Debug("Pipeline execution completed")
	return nil
}

// CompletedSteps returns the descriptions of the steps that have finished,
// in execution order.
func (p *Pipeline) CompletedSteps() []string {
	return p.state.Completed
}

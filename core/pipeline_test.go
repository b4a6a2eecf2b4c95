package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joanpaneque/new-project-script/fs"
	"github.com/joanpaneque/new-project-script/logger"
	"github.com/joanpaneque/new-project-script/patch"
)

type recordingPublisher struct {
	started   []string
	completed []string
	skipped   []string
	failed    []string
}

func (p *recordingPublisher) StepStarted(description string) {
	p.started = append(p.started, description)
}

func (p *recordingPublisher) StepCompleted(description string) {
	p.completed = append(p.completed, description)
}
func (p *recordingPublisher) StepSkipped(description, reason string) {
	p.skipped = append(p.skipped, description)
}
func (p *recordingPublisher) Error(description string, err error) {
	p.failed = append(p.failed, description)
}

type stubStep struct {
	desc string
	err  error
	runs int
}

func (s *stubStep) Description() string { return s.desc }

func (s *stubStep) Execute(state *State) error {
	s.runs++
	return s.err
}

func newTestPipeline(steps []Step, pub StepPublisher) *Pipeline {
	return NewPipeline(steps, fs.NewMemoryFileSystem(), pub, logger.NewNullLogger())
}

func TestPipelineExecutesStepsInOrder(t *testing.T) {
	first := &stubStep{desc: "first"}
	second := &stubStep{desc: "second"}
	third := &stubStep{desc: "third"}
	pub := &recordingPublisher{}

	p := newTestPipeline([]Step{first, second, third}, pub)
	err := p.Execute("demo", "/tmp/work")

	assert.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, pub.started)
	assert.Equal(t, []string{"first", "second", "third"}, pub.completed)
	assert.Equal(t, []string{"first", "second", "third"}, p.CompletedSteps())
	assert.Equal(t, 1, first.runs)
	assert.Equal(t, 1, second.runs)
	assert.Equal(t, 1, third.runs)
}

func TestPipelineAbortsOnFirstFailure(t *testing.T) {
	boom := errors.New("boom")
	first := &stubStep{desc: "first"}
	failing := &stubStep{desc: "failing", err: boom}
	never := &stubStep{desc: "never"}
	pub := &recordingPublisher{}

	p := newTestPipeline([]Step{first, failing, never}, pub)
	err := p.Execute("demo", "/tmp/work")

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, never.runs)
	assert.Equal(t, []string{"first"}, pub.completed)
	assert.Equal(t, []string{"failing"}, pub.failed)
	assert.Equal(t, []string{"first"}, p.CompletedSteps())
}

func TestPipelineSkipsMissingEditTargets(t *testing.T) {
	edit := &LinePatchStep{
		Desc:  "patch env",
		Path:  ".env",
		Rules: patch.KeyValue("DB_HOST", "pgsql"),
	}
	after := &stubStep{desc: "after"}
	pub := &recordingPublisher{}

	p := newTestPipeline([]Step{edit, after}, pub)
	err := p.Execute("demo", "/tmp/work")

	assert.NoError(t, err)
	assert.Equal(t, []string{"patch env"}, pub.skipped)
	assert.Equal(t, []string{"after"}, pub.completed)
	assert.Equal(t, 1, after.runs)
}

func TestPipelineStateIsInitialized(t *testing.T) {
	probe := &stubStep{desc: "probe"}
	p := newTestPipeline([]Step{probe}, nil)

	err := p.Execute("demo", "/tmp/work")
	assert.NoError(t, err)
	assert.Equal(t, "demo", p.state.ProjectName)
	assert.Equal(t, "/tmp/work", p.state.WorkDir)
}

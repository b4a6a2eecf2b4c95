package core

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessStepSucceedsOnZeroExit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX shell tools required")
	}

	state := newTestState(t)
	state.WorkDir = t.TempDir()

	step := &ProcessStep{Desc: "noop", Command: "true"}
	assert.NoError(t, step.Execute(state))
}

func TestProcessStepReportsExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX shell tools required")
	}

	state := newTestState(t)
	state.WorkDir = t.TempDir()

	step := &ProcessStep{Desc: "fail", Command: "false"}
	err := step.Execute(state)
	require.Error(t, err)

	var procErr *ProcessError
	require.ErrorAs(t, err, &procErr)
	assert.Equal(t, 1, procErr.ExitCode)
	assert.Equal(t, "false", procErr.Command)
}

func TestProcessStepReportsLaunchFailure(t *testing.T) {
	state := newTestState(t)
	state.WorkDir = t.TempDir()

	step := &ProcessStep{Desc: "missing", Command: "definitely-not-a-real-binary-xyz"}
	err := step.Execute(state)
	require.Error(t, err)

	var procErr *ProcessError
	require.ErrorAs(t, err, &procErr)
	assert.NotNil(t, procErr.Err)
}

func TestProcessErrorMessages(t *testing.T) {
	exited := &ProcessError{Command: "composer install", ExitCode: 2}
	assert.Equal(t, `command "composer install" exited with code 2`, exited.Error())

	launch := &ProcessError{Command: "laravel new demo", ExitCode: -1, Err: assert.AnError}
	assert.Contains(t, launch.Error(), "failed to start")
}

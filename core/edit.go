package core

import (
	"fmt"

	"github.com/joanpaneque/new-project-script/patch"
)

// LinePatchStep rewrites select lines of an existing file with ordered
// first-match-wins rules, leaving every other line verbatim. A missing
// target is reported as ErrMissingFile so the pipeline can warn and
// continue.
type LinePatchStep struct {
	Desc  string
	Path  string
	Rules []patch.LineRule
}

func (s *LinePatchStep) Description() string { return s.Desc }

func (s *LinePatchStep) Execute(state *State) error {
	return editFile(state, s.Path, func(content string) string {
		return patch.ApplyLineRules(content, s.Rules)
	})
}

// ReplaceStep applies guarded whole-text substring replacements to an
// existing file. Like LinePatchStep it skips with a warning when the
// target is missing.
type ReplaceStep struct {
	Desc         string
	Path         string
	Replacements []patch.Replacement
}

func (s *ReplaceStep) Description() string { return s.Desc }

func (s *ReplaceStep) Execute(state *State) error {
	return editFile(state, s.Path, func(content string) string {
		return patch.ApplyReplacements(content, s.Replacements)
	})
}

func editFile(state *State, path string, transform func(string) string) error {
	full := state.Path(path)
	if !state.FileSystem.Exists(full) {
		return fmt.Errorf("%s: %w", path, ErrMissingFile)
	}

	content, err := state.FileSystem.ReadFile(full)
	if err != nil {
		return &IOError{Path: path, Err: err}
	}

	if err := state.FileSystem.WriteFile(full, transform(content)); err != nil {
		return &IOError{Path: path, Err: err}
	}

	state.Logger.Debug("Patched file " + path)
	return nil
}

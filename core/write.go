package core

// FileWriteStep materializes a known text blob at a project-relative path,
// overwriting any existing file. Parent directories are created as needed.
// When ClearDir is set, that directory is recursively emptied first.
type FileWriteStep struct {
	Desc     string
	Path     string
	Content  string
	ClearDir string
}

func (s *FileWriteStep) Description() string { return s.Desc }

func (s *FileWriteStep) Execute(state *State) error {
	if s.ClearDir != "" {
		dir := state.Path(s.ClearDir)
		if err := state.FileSystem.ClearDir(dir); err != nil {
			return &IOError{Path: s.ClearDir, Err: err}
		}
		state.Logger.Debug("Cleared directory " + s.ClearDir)
	}

	if err := state.FileSystem.WriteFile(state.Path(s.Path), s.Content); err != nil {
		return &IOError{Path: s.Path, Err: err}
	}

	state.Logger.Debug("Wrote file " + s.Path)
	return nil
}

// MkdirStep creates a set of project-relative directories, parents
// included.
type MkdirStep struct {
	Desc  string
	Paths []string
}

func (s *MkdirStep) Description() string { return s.Desc }

func (s *MkdirStep) Execute(state *State) error {
	for _, path := range s.Paths {
		if err := state.FileSystem.MkdirAll(state.Path(path)); err != nil {
			return &IOError{Path: path, Err: err}
		}
		state.Logger.Debug("Created directory " + path)
	}
	return nil
}

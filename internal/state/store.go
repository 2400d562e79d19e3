package state

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Store persists the whole state root. Both operations fail soft: Load
// yields an empty root on a missing or corrupt document, Save logs and
// swallows write failures. Losing one turn of anti-repeat memory is
// preferable to failing the user-facing reply.
type Store interface {
	Load() Root
	Save(root Root)
}

// FileStore keeps the root as a single JSON file, rewritten wholesale on
// every save.
type FileStore struct {
	path string
	log  zerolog.Logger
}

func NewFileStore(path string, log zerolog.Logger) *FileStore {
	return &FileStore{path: path, log: log}
}

func (s *FileStore) Load() Root {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Err(err).Str("path", s.path).Msg("unable to read state file, starting empty")
		}
		return Root{}
	}

	var root Root
	if err := json.Unmarshal(data, &root); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("state file is corrupt, starting empty")
		return Root{}
	}
	if root == nil {
		root = Root{}
	}
	return root
}

func (s *FileStore) Save(root Root) {
	data, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		s.log.Error().Err(err).Msg("unable to encode state")
		return
	}
	data = append(data, '\n')

	if err := writeFileAtomic(s.path, data); err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("unable to write state file")
	}
}

// writeFileAtomic writes via a sibling temp file and rename so a crash
// mid-save never leaves a truncated document behind.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

// Package linestore loads and saves the raw lines of a CSV file and persists
// the line list as a compressed snapshot, so a document can be re-parsed
// later without the original file.
package linestore

import (
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/shapestone/shape-csvtable/internal/tokenizer"
)

// Store reads and writes line lists on a filesystem.
type Store struct {
	fs     afero.Fs
	logger log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for debug output.
func WithLogger(logger log.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// NewStore returns a Store backed by fs.
func NewStore(fs afero.Fs, opts ...Option) *Store {
	s := &Store{
		fs:     fs,
		logger: log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Exists reports whether path exists.
func (s *Store) Exists(path string) (bool, error) {
	ok, err := afero.Exists(s.fs, path)
	if err != nil {
		return false, errors.Wrapf(err, "stat %s", path)
	}
	return ok, nil
}

// Load reads the file at path and returns its lines without terminators.
func (s *Store) Load(path string) ([]string, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}

	lines := tokenizer.SplitLines(string(data))
	level.Debug(s.logger).Log("msg", "loaded lines", "path", path, "lines", len(lines), "bytes", len(data))
	return lines, nil
}

// Save writes lines to path, each followed by "\n". The file is replaced
// atomically.
func (s *Store) Save(path string, lines []string) error {
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	if err := s.writeAtomic(path, []byte(sb.String())); err != nil {
		return err
	}
	level.Debug(s.logger).Log("msg", "saved lines", "path", path, "lines", len(lines), "bytes", sb.Len())
	return nil
}

// writeAtomic writes data to a temporary sibling of path and renames it into place.
func (s *Store) writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", tmp)
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		_ = s.fs.Remove(tmp)
		return errors.Wrapf(err, "rename %s", tmp)
	}
	return nil
}

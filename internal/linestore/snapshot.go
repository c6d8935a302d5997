package linestore

import (
	"github.com/go-kit/log/level"
	jsoniter "github.com/json-iterator/go"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// SnapshotVersion is the format version written by SaveSnapshot.
const SnapshotVersion = 1

// ErrSnapshotVersion is returned when a snapshot has an unknown format version.
var ErrSnapshotVersion = errors.New("unsupported snapshot version")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// snapshot is the JSON document stored, zstd compressed, in a snapshot file.
type snapshot struct {
	Version int      `json:"version"`
	Lines   []string `json:"lines"`
}

// SaveSnapshot persists the line list to path.
func (s *Store) SaveSnapshot(path string, lines []string) error {
	if lines == nil {
		lines = []string{}
	}
	raw, err := json.Marshal(snapshot{Version: SnapshotVersion, Lines: lines})
	if err != nil {
		return errors.Wrap(err, "encode snapshot")
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return errors.Wrap(err, "create zstd encoder")
	}
	compressed := enc.EncodeAll(raw, nil)
	if err := enc.Close(); err != nil {
		return errors.Wrap(err, "close zstd encoder")
	}

	if err := s.writeAtomic(path, compressed); err != nil {
		return err
	}
	level.Debug(s.logger).Log("msg", "saved snapshot", "path", path, "lines", len(lines), "raw_bytes", len(raw), "bytes", len(compressed))
	return nil
}

// LoadSnapshot restores a line list written by SaveSnapshot.
func (s *Store) LoadSnapshot(path string) ([]string, error) {
	compressed, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "load snapshot %s", path)
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, errors.Wrap(err, "create zstd decoder")
	}
	defer dec.Close()

	raw, err := dec.DecodeAll(compressed, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "decompress snapshot %s", path)
	}

	var snap snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, errors.Wrapf(err, "decode snapshot %s", path)
	}
	if snap.Version != SnapshotVersion {
		return nil, errors.Wrapf(ErrSnapshotVersion, "snapshot %s has version %d", path, snap.Version)
	}
	if snap.Lines == nil {
		snap.Lines = []string{}
	}

	level.Debug(s.logger).Log("msg", "loaded snapshot", "path", path, "lines", len(snap.Lines))
	return snap.Lines, nil
}

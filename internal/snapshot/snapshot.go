// Package snapshot reads and writes portable response cache snapshots.
// A snapshot is a zstd-compressed JSON document holding every cached
// question/answer pair; it is the unit shipped between environments so
// a freshly deployed instance starts with a warm cache.
package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"
)

// FormatVersion guards against reading snapshots written by an
// incompatible build.
const FormatVersion = 1

// Snapshot is the on-disk document.
type Snapshot struct {
	Version   int               `json:"version"`
	CreatedAt time.Time         `json:"created_at"`
	Entries   map[string]string `json:"entries"`
}

// Write compresses the entries into a snapshot file. The file is
// written to a temp path first and renamed, so readers never observe a
// partial snapshot.
func Write(path string, entries map[string]string) error {
	snap := Snapshot{
		Version:   FormatVersion,
		CreatedAt: time.Now().UTC(),
		Entries:   entries,
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".snapshot-*.zst")
	if err != nil {
		return fmt.Errorf("snapshot: create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	encoder, err := zstd.NewWriter(tmp, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("snapshot: create encoder: %w", err)
	}

	if err := json.NewEncoder(encoder).Encode(snap); err != nil {
		_ = encoder.Close()
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("snapshot: encode: %w", err)
	}

	if err := encoder.Close(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("snapshot: close encoder: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("snapshot: close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("snapshot: rename: %w", err)
	}

	return nil
}

// Read loads a snapshot file and returns its entries.
func Read(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("snapshot: open: %w", err)
	}
	defer f.Close()

	snap, err := Decode(f)
	if err != nil {
		return nil, err
	}
	return snap.Entries, nil
}

// Decode reads a snapshot from a zstd-compressed stream.
func Decode(r io.Reader) (*Snapshot, error) {
	decoder, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("snapshot: create decoder: %w", err)
	}
	defer decoder.Close()

	var snap Snapshot
	if err := json.NewDecoder(decoder.IOReadCloser()).Decode(&snap); err != nil {
		return nil, fmt.Errorf("snapshot: decode: %w", err)
	}

	if snap.Version != FormatVersion {
		return nil, fmt.Errorf("snapshot: unsupported version %d", snap.Version)
	}
	if snap.Entries == nil {
		snap.Entries = map[string]string{}
	}

	return &snap, nil
}

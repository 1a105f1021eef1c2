package render

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// Digest identifies rendered content.
type Digest = [sha256.Size]byte

// Current schema version - increment when manifest format changes.
const manifestSchemaVersion uint16 = 1

const manifestName = ".genco-manifest.mp"

// manifest records the digest of every file the output directory owns, so
// unchanged files are neither rewritten nor re-statted by downstream build
// tooling.
type manifest struct {
	Schema  uint16
	Digests map[string]Digest
}

// Output is a generated-files directory. Thread-safe for concurrent writes.
type Output struct {
	mu  sync.Mutex
	dir string
	man manifest
}

// OpenOutput opens dir as an output directory, loading its manifest when
// one exists.
func OpenOutput(dir string) (*Output, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	o := &Output{
		dir: dir,
		man: manifest{Schema: manifestSchemaVersion, Digests: make(map[string]Digest)},
	}
	f, err := os.Open(filepath.Join(dir, manifestName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return o, nil
		}
		return nil, err
	}
	defer f.Close()

	var m manifest
	if err := msgpack.NewDecoder(f).Decode(&m); err != nil || m.Schema != manifestSchemaVersion {
		// A stale or corrupt manifest only costs a full rewrite.
		return o, nil
	}
	if m.Digests == nil {
		m.Digests = make(map[string]Digest)
	}
	o.man = m
	return o, nil
}

// Write stores data under the relative path, skipping the write when the
// manifest already records identical content and the file still exists.
// Reports whether the file was (re)written.
func (o *Output) Write(path string, data []byte) (bool, error) {
	if filepath.IsAbs(path) {
		return false, fmt.Errorf("render: output path must be relative: %s", path)
	}
	o.mu.Lock()
	defer o.mu.Unlock()

	sum := sha256.Sum256(data)
	full := filepath.Join(o.dir, path)
	if prev, ok := o.man.Digests[path]; ok && prev == sum {
		if _, err := os.Stat(full); err == nil {
			return false, nil
		}
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return false, err
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return false, err
	}
	o.man.Digests[path] = sum
	return true, nil
}

// Flush atomically persists the manifest.
func (o *Output) Flush() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	full := filepath.Join(o.dir, manifestName)
	f, err := os.CreateTemp(o.dir, "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(&o.man); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), full)
}

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// fileCounterStorage keeps one JSON object per day in <dir>/logs/<day>.json,
// mapping counter names to values. A process-wide mutex serialises
// read-modify-write cycles; files are replaced atomically.
type fileCounterStorage struct {
	mu  sync.Mutex
	dir string
}

// NewFileCounterStorage returns a [CounterStorage] writing under dir/logs.
func NewFileCounterStorage(dir string) (CounterStorage, error) {
	logs := filepath.Join(dir, "logs")
	if err := os.MkdirAll(logs, 0o755); err != nil {
		return nil, fmt.Errorf("error creating counters directory: %w", err)
	}

	return &fileCounterStorage{dir: logs}, nil
}

func (f *fileCounterStorage) Increment(_ context.Context, day, name string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	counters, err := f.load(day)
	if err != nil {
		return 0, err
	}

	counters[name]++
	if err := f.save(day, counters); err != nil {
		return 0, err
	}

	return counters[name], nil
}

func (f *fileCounterStorage) IncrementBelow(_ context.Context, day, name string, ceiling int64) (int64, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	counters, err := f.load(day)
	if err != nil {
		return 0, false, err
	}

	if counters[name] >= ceiling {
		return counters[name], false, nil
	}

	counters[name]++
	if err := f.save(day, counters); err != nil {
		return 0, false, err
	}

	return counters[name], true, nil
}

func (f *fileCounterStorage) Count(_ context.Context, day, name string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	counters, err := f.load(day)
	if err != nil {
		return 0, err
	}

	return counters[name], nil
}

func (f *fileCounterStorage) path(day string) (string, error) {
	if day == "" || strings.ContainsAny(day, `/\.`) {
		return "", fmt.Errorf("invalid counter day %q", day)
	}
	return filepath.Join(f.dir, day+".json"), nil
}

func (f *fileCounterStorage) load(day string) (map[string]int64, error) {
	p, err := f.path(day)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return make(map[string]int64), nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading counters: %w", err)
	}

	counters := make(map[string]int64)
	if err := json.Unmarshal(data, &counters); err != nil {
		// a corrupted day file restarts from zero rather than blocking every
		// request of the day
		return make(map[string]int64), nil
	}

	return counters, nil
}

func (f *fileCounterStorage) save(day string, counters map[string]int64) error {
	p, err := f.path(day)
	if err != nil {
		return err
	}

	data, err := json.Marshal(counters)
	if err != nil {
		return fmt.Errorf("error encoding counters: %w", err)
	}

	tmp, err := os.CreateTemp(f.dir, tempPrefix+day+"-*")
	if err != nil {
		return fmt.Errorf("error creating temp counters file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing counters: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error closing counters file: %w", err)
	}

	if err := os.Rename(tmp.Name(), p); err != nil {
		return fmt.Errorf("error replacing counters file: %w", err)
	}

	return nil
}

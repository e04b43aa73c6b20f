package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sbilibin2017/gw-invest-ledger/internal/logger"
	"github.com/sbilibin2017/gw-invest-ledger/internal/models"
)

// FileStateRepository keeps the ledger in a single JSON document.
// All mutations go through one writer holding the lock for the whole
// read-modify-write; the document is replaced atomically by rename.
type FileStateRepository struct {
	mu    sync.RWMutex
	path  string
	state *models.State
}

// NewFileStateRepository loads the document at path, or starts from an empty
// ledger when the file does not exist yet.
func NewFileStateRepository(path string) (*FileStateRepository, error) {
	r := &FileStateRepository{path: path}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		r.state = models.NewState()
	case err != nil:
		return nil, fmt.Errorf("read ledger file %s: %w", path, err)
	default:
		var s models.State
		if len(data) > 0 {
			if err := json.Unmarshal(data, &s); err != nil {
				return nil, fmt.Errorf("decode ledger file %s: %w", path, err)
			}
		}
		s.Normalize()
		r.state = &s
	}

	logger.Log.Infow("file ledger opened",
		"path", path,
		"users", len(r.state.Users),
		"transactions", len(r.state.Transactions),
	)
	return r, nil
}

// Update runs fn against a private copy of the ledger and persists it.
// When fn or the write fails, the committed ledger is left untouched.
func (r *FileStateRepository) Update(ctx context.Context, fn func(*models.State) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	working := r.state.Clone()
	if err := fn(working); err != nil {
		return err
	}

	if err := r.flush(working); err != nil {
		logger.Log.Errorw("failed to persist ledger file", "path", r.path, "error", err)
		return err
	}
	r.state = working
	return nil
}

// View runs fn against a copy of the last committed ledger.
func (r *FileStateRepository) View(ctx context.Context, fn func(*models.State) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.RLock()
	snapshot := r.state.Clone()
	r.mu.RUnlock()
	return fn(snapshot)
}

// Dump returns the persisted document as stored on disk.
func (r *FileStateRepository) Dump(ctx context.Context) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrStateNotFound
	}
	return data, err
}

func (r *FileStateRepository) flush(s *models.State) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), r.path)
}

package blob

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tableside/tableside/internal/billing/domain"
)

// FileStore keeps the serialized bill array in a single JSON file,
// rewritten in full on every save.
type FileStore struct {
	log  *slog.Logger
	path string
}

func NewFileStore(log *slog.Logger, path string) *FileStore {
	return &FileStore{log: log, path: path}
}

func (s *FileStore) Load(ctx context.Context) ([]domain.ActiveBill, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	var bills []domain.ActiveBill
	if err := json.Unmarshal(data, &bills); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return bills, nil
}

func (s *FileStore) Save(ctx context.Context, bills []domain.ActiveBill) error {
	if bills == nil {
		bills = []domain.ActiveBill{}
	}
	data, err := json.Marshal(bills)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	// Write-then-rename so a crash mid-write never corrupts the blob.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

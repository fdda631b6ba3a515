package repositories

import (
	"context"
	"fmt"
	"os"

	"github.com/cbodonnell/pocketpet/pkg/pet/types"
)

// FileRepository keeps the pet in a JSON file replaced atomically on every save.
type FileRepository struct {
	path string
	perm os.FileMode
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: path,
		perm: 0644,
	}
}

// Path returns the save file path.
func (r *FileRepository) Path() string {
	return r.path
}

func (r *FileRepository) Load(ctx context.Context) (*types.State, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to read save file %s: %w", r.path, err)
	}
	return DecodeState(data)
}

func (r *FileRepository) Save(ctx context.Context, state *types.State) error {
	data, err := EncodeState(state)
	if err != nil {
		return err
	}
	if err := atomicWriteFile(r.path, data, r.perm); err != nil {
		return fmt.Errorf("failed to write save file %s: %w", r.path, err)
	}
	return nil
}

func (r *FileRepository) Close(ctx context.Context) error {
	return nil
}

package repositories

import (
	"context"

	"github.com/cbodonnell/pocketpet/pkg/pet/types"
)

// Repository stores the single pet.
type Repository interface {
	// Load returns the stored pet, *ErrNotFound when nothing is stored
	// and *ErrCorrupt when the stored data is unusable.
	Load(ctx context.Context) (*types.State, error)
	// Save replaces the stored pet. A failed save leaves the previous one intact.
	Save(ctx context.Context, state *types.State) error
	Close(ctx context.Context) error
}

package set

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/burracoapp/scoretracker/internal/repositories/set Repository

import (
	"context"
)

// Repository defines the interface for set record persistence
type Repository interface {
	// CreateSet inserts one set record
	CreateSet(ctx context.Context, input *CreateSetInput) error

	// ListSetsForGame retrieves all set records for a game, ordered by set number ascending
	ListSetsForGame(ctx context.Context, input *ListSetsForGameInput) (*ListSetsForGameOutput, error)

	// DeleteSetsForGame removes every set record for a game; zero records is a success
	DeleteSetsForGame(ctx context.Context, input *DeleteSetsForGameInput) error
}

package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/burracoapp/scoretracker/internal/repositories/game Repository

import (
	"context"

	"github.com/burracoapp/scoretracker/internal/models"
)

// Repository defines the interface for game record persistence
type Repository interface {
	// CreateGame inserts a game record, forcing the status to in-progress
	CreateGame(ctx context.Context, input *CreateGameInput) error

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error)

	// ListGamesByNickname retrieves all games owned by a nickname, most recent first
	ListGamesByNickname(ctx context.Context, input *ListGamesByNicknameInput) (*ListGamesByNicknameOutput, error)

	// SetGameStatus updates the status of a game; a missing game is a no-op
	SetGameStatus(ctx context.Context, input *SetGameStatusInput) error

	// DeleteGame removes a game record, tolerating a missing record
	DeleteGame(ctx context.Context, input *DeleteGameInput) error
}

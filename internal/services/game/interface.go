package game

import "context"

// Service defines the interface for score-tracking operations
type Service interface {
	// CreateGame persists a new game and starts the session with it
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// RecordRound persists one set per team and updates the session totals
	RecordRound(ctx context.Context, input *RecordRoundInput) (*RecordRoundOutput, error)

	// ResumeGame loads a stored game and rebuilds the session from its sets
	ResumeGame(ctx context.Context, input *ResumeGameInput) (*ResumeGameOutput, error)

	// ListGames returns a nickname's games, most recent first
	ListGames(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error)

	// GetGameDetail returns a game with its ordered sets and per-team totals
	GetGameDetail(ctx context.Context, input *GetGameDetailInput) (*GetGameDetailOutput, error)

	// DeleteGame removes a game and all of its sets
	DeleteGame(ctx context.Context, input *DeleteGameInput) (*DeleteGameOutput, error)

	// EndSession clears the active game without touching persistence
	EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error)

	// Session exposes the current session for rendering
	Session() *Session
}

package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotFound       GameError = "game not found"
	ErrNoActiveGame       GameError = "no active game"
	ErrUnknownTeam        GameError = "score references a team not in the game"
	ErrScoreCountMismatch GameError = "exactly one score entry per team is required"
	ErrMissingNickname    GameError = "nickname is required"
	ErrMissingTeamName    GameError = "team names are required"
	ErrInvalidThreshold   GameError = "winning score must be at least 1"
	ErrNilInput           GameError = "input cannot be nil"
	ErrNilConfig          GameError = "config cannot be nil"
	ErrNilGameRepo        GameError = "game repository cannot be nil"
	ErrNilSetRepo         GameError = "set repository cannot be nil"
	ErrNilClock           GameError = "clock cannot be nil"
	ErrNilUUIDGenerator   GameError = "UUID generator cannot be nil"
)

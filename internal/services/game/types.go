package game

import (
	"github.com/burracoapp/scoretracker/internal/common/clock"
	"github.com/burracoapp/scoretracker/internal/common/uuid"
	"github.com/burracoapp/scoretracker/internal/models"
	gameRepo "github.com/burracoapp/scoretracker/internal/repositories/game"
	setRepo "github.com/burracoapp/scoretracker/internal/repositories/set"
)

// Config holds the dependencies and settings for the game service
type Config struct {
	// GameRepo persists game records
	GameRepo gameRepo.Repository

	// SetRepo persists set records
	SetRepo setRepo.Repository

	// Clock provides the current time
	Clock clock.Clock

	// UUID generates game identifiers
	UUID uuid.UUID

	// UnknownTeamPolicy controls how the session treats scores for teams
	// that are not part of the active game
	UnknownTeamPolicy UnknownTeamPolicy
}

type CreateGameInput struct {
	// Nickname is the owner label for history lookups
	Nickname string

	// FinalScore is the winning-score threshold
	FinalScore int

	Team1 string
	Team2 string

	// Team3 is empty for a 2-team game
	Team3 string
}

type CreateGameOutput struct {
	Game *models.Game
}

// TeamRoundScore is one team's entry in a round submission
type TeamRoundScore struct {
	Team   string
	Base   int
	Points int
}

type RecordRoundInput struct {
	// Scores holds exactly one entry per team in the active game
	Scores []TeamRoundScore
}

type RecordRoundOutput struct {
	// Sets are the persisted set records for the round
	Sets []*models.Set

	// Winner is the winning team, nil while the game is still open
	Winner *models.TeamScore

	// GameOver reports whether the game is now completed
	GameOver bool
}

type ResumeGameInput struct {
	GameID string
}

type ResumeGameOutput struct {
	Game  *models.Game
	Teams []*models.TeamScore
}

type ListGamesInput struct {
	Nickname string
}

type ListGamesOutput struct {
	Games []*models.Game
}

type GetGameDetailInput struct {
	GameID string
}

type GetGameDetailOutput struct {
	Game *models.Game

	// Sets are ordered by set number ascending
	Sets []*models.Set

	// Totals maps team name to the sum of its set totals
	Totals map[string]int
}

type DeleteGameInput struct {
	GameID string
}

type DeleteGameOutput struct {
	Success bool
}

type EndSessionInput struct {
}

type EndSessionOutput struct {
	Success bool
}

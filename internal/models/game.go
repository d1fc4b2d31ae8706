package models

// GameStatus represents the lifecycle state of a game
type GameStatus int

const (
	// GameStatusInProgress indicates scores are still being recorded
	GameStatusInProgress GameStatus = 0

	// GameStatusCompleted indicates a team has reached the winning threshold
	GameStatusCompleted GameStatus = 1
)

// Game represents one played match
type Game struct {
	// ID is the unique identifier for the game
	ID string

	// DateTime is the creation timestamp in display format (DD/MM/YYYY, HH:MM:SS)
	DateTime string

	// Nickname is the owner label used to look up game history
	Nickname string

	// FinalScore is the winning-score threshold
	FinalScore int

	// Team1 is the first team name
	Team1 string

	// Team2 is the second team name
	Team2 string

	// Team3 is the third team name, set only for 3-team games
	Team3 string

	// Status is the current state of the game
	Status GameStatus
}

// TeamNames returns the team names, including Team3 only when present
func (g *Game) TeamNames() []string {
	names := []string{g.Team1, g.Team2}
	if g.Team3 != "" {
		names = append(names, g.Team3)
	}
	return names
}

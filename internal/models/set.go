package models

// Set represents one round's score entry for one team within a game
type Set struct {
	// Team is the name of the team the entry belongs to
	Team string

	// GameID is the identifier of the owning game
	GameID string

	// Number is the per-team sequence number of the set
	Number int

	// Base is the base score for the round
	Base int

	// Points are the bonus points for the round
	Points int

	// Total is the derived sum of Base and Points
	Total int
}

// NewSet builds a set entry with the derived total. Total is never set
// independently of Base and Points.
func NewSet(team, gameID string, number, base, points int) *Set {
	return &Set{
		Team:   team,
		GameID: gameID,
		Number: number,
		Base:   base,
		Points: points,
		Total:  base + points,
	}
}

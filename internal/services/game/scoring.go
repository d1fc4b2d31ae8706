package game

import (
	"github.com/burracoapp/scoretracker/internal/models"
)

// Winner returns the team that has won the game: its total has reached the
// threshold and strictly exceeds every other team's total. When no team
// qualifies, or the highest qualifying total is shared, there is no winner
// and nil is returned. Totals change every round, so this is recomputed on
// each call rather than cached.
func Winner(teams []*models.TeamScore, threshold int) *models.TeamScore {
	for _, team := range teams {
		if team.TotalScore < threshold {
			continue
		}

		highest := true
		for _, other := range teams {
			if other != team && other.TotalScore >= team.TotalScore {
				highest = false
				break
			}
		}

		if highest {
			return team
		}
	}

	return nil
}

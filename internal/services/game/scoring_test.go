package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/burracoapp/scoretracker/internal/models"
)

func TestWinner(t *testing.T) {
	tests := []struct {
		name      string
		scores    map[string]int
		threshold int
		want      string
	}{
		{
			name:      "nobody at threshold",
			scores:    map[string]int{"Aquile": 120, "Falchi": 60},
			threshold: 2005,
			want:      "",
		},
		{
			name:      "leader past threshold wins",
			scores:    map[string]int{"Aquile": 2010, "Falchi": 1990},
			threshold: 2005,
			want:      "Aquile",
		},
		{
			name:      "exact tie at threshold has no winner",
			scores:    map[string]int{"Aquile": 2005, "Falchi": 2005},
			threshold: 2005,
			want:      "",
		},
		{
			name:      "tie above threshold has no winner",
			scores:    map[string]int{"Aquile": 2300, "Falchi": 2300, "Gufi": 1000},
			threshold: 2005,
			want:      "",
		},
		{
			name:      "both past threshold, strictly highest wins",
			scores:    map[string]int{"Aquile": 2100, "Falchi": 2200},
			threshold: 2005,
			want:      "Falchi",
		},
		{
			name:      "exactly at threshold and strictly ahead",
			scores:    map[string]int{"Aquile": 2005, "Falchi": 1900},
			threshold: 2005,
			want:      "Aquile",
		},
		{
			name:      "three teams",
			scores:    map[string]int{"Aquile": 1800, "Falchi": 2050, "Gufi": 2000},
			threshold: 2005,
			want:      "Falchi",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			teams := make([]*models.TeamScore, 0, len(tt.scores))
			for name, score := range tt.scores {
				teams = append(teams, &models.TeamScore{Name: name, TotalScore: score})
			}

			winner := Winner(teams, tt.threshold)
			if tt.want == "" {
				assert.Nil(t, winner)
			} else {
				assert.NotNil(t, winner)
				assert.Equal(t, tt.want, winner.Name)
			}
		})
	}
}

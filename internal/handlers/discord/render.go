package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/burracoapp/scoretracker/internal/models"
	"github.com/burracoapp/scoretracker/internal/services/game"
)

// renderNewGameEmbed renders the confirmation for a freshly created game
func renderNewGameEmbed(g *models.Game) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Teams",
			Value:  strings.Join(g.TeamNames(), ", "),
			Inline: true,
		},
		{
			Name:   "Winning score",
			Value:  fmt.Sprintf("%d", g.FinalScore),
			Inline: true,
		},
		{
			Name:   "Started",
			Value:  g.DateTime,
			Inline: true,
		},
	}

	return &discordgo.MessageEmbed{
		Title:       "New game started",
		Description: fmt.Sprintf("Tracking scores for **%s**. Record rounds with `/burraco score`.", g.Nickname),
		Color:       0x00ff00, // Green color
		Fields:      fields,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Game ID: %s", g.ID),
		},
	}
}

// renderScoreboardEmbed renders the current totals for the active game
func renderScoreboardEmbed(g *models.Game, teams []*models.TeamScore) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(teams))
	for _, team := range teams {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   team.Name,
			Value:  fmt.Sprintf("**%d** points in %d sets", team.TotalScore, len(team.Sets)),
			Inline: true,
		})
	}

	return &discordgo.MessageEmbed{
		Title:       "Current standings",
		Description: fmt.Sprintf("First to **%d** wins.", g.FinalScore),
		Color:       0x00ff00, // Green color
		Fields:      fields,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Game ID: %s", g.ID),
		},
	}
}

// renderWinnerEmbed renders the end-of-game banner
func renderWinnerEmbed(g *models.Game, winner *models.TeamScore) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🏆 %s won the game!", winner.Name),
		Description: fmt.Sprintf("Final score: **%d** points. Put the game away with `/burraco end`.", winner.TotalScore),
		Color:       0xffd700, // Gold color
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Game ID: %s", g.ID),
		},
	}
}

// renderHistoryEmbed renders a nickname's game list, most recent first
func renderHistoryEmbed(nickname string, games []*models.Game) *discordgo.MessageEmbed {
	var sb strings.Builder
	for _, g := range games {
		status := "in progress"
		if g.Status == models.GameStatusCompleted {
			status = "completed"
		}

		sb.WriteString(fmt.Sprintf("**%s** — %s (%s)\n`%s`\n", g.DateTime, strings.Join(g.TeamNames(), ", "), status, g.ID))
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Games for %s", nickname),
		Description: sb.String(),
		Color:       0x00ff00, // Green color
	}
}

// renderDetailEmbed renders the full score sheet for a stored game
func renderDetailEmbed(detail *game.GetGameDetailOutput) *discordgo.MessageEmbed {
	g := detail.Game

	fields := make([]*discordgo.MessageEmbedField, 0, len(detail.Totals)+1)
	for _, name := range g.TeamNames() {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   name,
			Value:  fmt.Sprintf("**%d** points", detail.Totals[name]),
			Inline: true,
		})
	}

	if len(detail.Sets) > 0 {
		var sb strings.Builder
		for _, set := range detail.Sets {
			sb.WriteString(fmt.Sprintf("Set %d — %s: %d + %d = **%d**\n", set.Number+1, set.Team, set.Base, set.Points, set.Total))
		}

		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Sets",
			Value: sb.String(),
		})
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Score sheet — %s", g.DateTime),
		Description: fmt.Sprintf("Winning score: **%d**", g.FinalScore),
		Color:       0x00ff00, // Green color
		Fields:      fields,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Game ID: %s", g.ID),
		},
	}
}

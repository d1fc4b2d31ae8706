package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/burracoapp/scoretracker/internal/services/game"
)

// DefaultWinningScore is the winning threshold used when the newgame
// subcommand does not specify one
const DefaultWinningScore = 2005

// BurracoCommand handles the /burraco command
type BurracoCommand struct {
	BaseCommand
	gameService game.Service
}

// NewBurracoCommand creates a new burraco command handler
func NewBurracoCommand(gameService game.Service) *BurracoCommand {
	minThreshold := float64(1)

	return &BurracoCommand{
		BaseCommand: BaseCommand{
			Name:        "burraco",
			Description: "Burraco score tracking commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "newgame",
					Description: "Start a new game",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "nickname",
							Description: "Your nickname, used to find your games later",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "team1",
							Description: "First team name",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "team2",
							Description: "Second team name",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "team3",
							Description: "Third team name, for a 3-team game",
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "target",
							Description: "Winning score (default 2005)",
							MinValue:    &minThreshold,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "score",
					Description: "Record one round of scores",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "base1",
							Description: "Base score for team 1",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "points1",
							Description: "Bonus points for team 1",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "base2",
							Description: "Base score for team 2",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "points2",
							Description: "Bonus points for team 2",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "base3",
							Description: "Base score for team 3",
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "points3",
							Description: "Bonus points for team 3",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "standings",
					Description: "Show the current scoreboard",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "history",
					Description: "List a nickname's games, most recent first",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "nickname",
							Description: "Nickname to search for",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "detail",
					Description: "Show the full score sheet for a game",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "game",
							Description: "Game ID from the history list",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "resume",
					Description: "Resume a stored game",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "game",
							Description: "Game ID from the history list",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "delete",
					Description: "Delete a game and all of its scores",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "game",
							Description: "Game ID from the history list",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "end",
					Description: "Put away the current game without deleting it",
				},
			},
		},
		gameService: gameService,
	}
}

// Handle processes a Discord interaction for the burraco command
func (c *BurracoCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	opts := subcommandOptions(data)

	var err error
	switch data.Options[0].Name {
	case "newgame":
		err = c.handleNewGame(s, i, opts)
	case "score":
		err = c.handleScore(s, i, opts)
	case "standings":
		err = c.handleStandings(s, i)
	case "history":
		err = c.handleHistory(s, i, opts)
	case "detail":
		err = c.handleDetail(s, i, opts)
	case "resume":
		err = c.handleResume(s, i, opts)
	case "delete":
		err = c.handleDelete(s, i, opts)
	case "end":
		err = c.handleEnd(s, i)
	default:
		err = errors.New("unknown subcommand")
	}

	return err
}

// subcommandOptions flattens the subcommand's options into a name lookup
func subcommandOptions(data discordgo.ApplicationCommandInteractionData) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	opts := make(map[string]*discordgo.ApplicationCommandInteractionDataOption)
	for _, opt := range data.Options[0].Options {
		opts[opt.Name] = opt
	}
	return opts
}

// handleNewGame handles the newgame subcommand
func (c *BurracoCommand) handleNewGame(s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	input := &game.CreateGameInput{
		Nickname:   opts["nickname"].StringValue(),
		FinalScore: DefaultWinningScore,
		Team1:      opts["team1"].StringValue(),
		Team2:      opts["team2"].StringValue(),
	}
	if opt, ok := opts["team3"]; ok {
		input.Team3 = opt.StringValue()
	}
	if opt, ok := opts["target"]; ok {
		input.FinalScore = int(opt.IntValue())
	}

	output, err := c.gameService.CreateGame(ctx, input)
	if err != nil {
		log.Printf("Error creating game: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to create game: %v", err))
	}

	return RespondWithEmbed(s, i, renderNewGameEmbed(output.Game))
}

// handleScore handles the score subcommand
func (c *BurracoCommand) handleScore(s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	session := c.gameService.Session()
	if !session.Active() {
		return RespondWithError(s, i, "No game in progress. Start one with `/burraco newgame` or resume one with `/burraco resume`.")
	}

	teams := session.Teams()
	scores := make([]game.TeamRoundScore, 0, len(teams))
	for idx, team := range teams {
		baseOpt, okBase := opts[fmt.Sprintf("base%d", idx+1)]
		pointsOpt, okPoints := opts[fmt.Sprintf("points%d", idx+1)]
		if !okBase || !okPoints {
			return RespondWithError(s, i, fmt.Sprintf("Scores are required for every team: missing base%d/points%d for %s.", idx+1, idx+1, team.Name))
		}

		scores = append(scores, game.TeamRoundScore{
			Team:   team.Name,
			Base:   int(baseOpt.IntValue()),
			Points: int(pointsOpt.IntValue()),
		})
	}

	output, err := c.gameService.RecordRound(ctx, &game.RecordRoundInput{
		Scores: scores,
	})
	if err != nil {
		log.Printf("Error recording round: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to record the round: %v", err))
	}

	if output.GameOver {
		return RespondWithEmbed(s, i, renderWinnerEmbed(session.Game(), output.Winner))
	}

	return RespondWithEmbed(s, i, renderScoreboardEmbed(session.Game(), session.Teams()))
}

// handleStandings handles the standings subcommand
func (c *BurracoCommand) handleStandings(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	session := c.gameService.Session()
	if !session.Active() {
		return RespondWithError(s, i, "No game in progress.")
	}

	winner := game.Winner(session.Teams(), session.Game().FinalScore)
	if winner != nil {
		return RespondWithEmbed(s, i, renderWinnerEmbed(session.Game(), winner))
	}

	return RespondWithEmbed(s, i, renderScoreboardEmbed(session.Game(), session.Teams()))
}

// handleHistory handles the history subcommand
func (c *BurracoCommand) handleHistory(s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	nickname := opts["nickname"].StringValue()
	output, err := c.gameService.ListGames(ctx, &game.ListGamesInput{
		Nickname: nickname,
	})
	if err != nil {
		log.Printf("Error fetching games: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to fetch games: %v", err))
	}

	if len(output.Games) == 0 {
		return RespondWithMessage(s, i, fmt.Sprintf("No games found for nickname **%s**.", nickname))
	}

	return RespondWithEmbed(s, i, renderHistoryEmbed(nickname, output.Games))
}

// handleDetail handles the detail subcommand
func (c *BurracoCommand) handleDetail(s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	output, err := c.gameService.GetGameDetail(ctx, &game.GetGameDetailInput{
		GameID: opts["game"].StringValue(),
	})
	if err != nil {
		log.Printf("Error fetching game detail: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to fetch the game: %v", err))
	}

	return RespondWithEmbed(s, i, renderDetailEmbed(output))
}

// handleResume handles the resume subcommand
func (c *BurracoCommand) handleResume(s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	output, err := c.gameService.ResumeGame(ctx, &game.ResumeGameInput{
		GameID: opts["game"].StringValue(),
	})
	if err != nil {
		log.Printf("Error resuming game: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to resume the game: %v", err))
	}

	return RespondWithEmbed(s, i, renderScoreboardEmbed(output.Game, output.Teams))
}

// handleDelete handles the delete subcommand
func (c *BurracoCommand) handleDelete(s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	gameID := opts["game"].StringValue()
	_, err := c.gameService.DeleteGame(ctx, &game.DeleteGameInput{
		GameID: gameID,
	})
	if err != nil {
		log.Printf("Error deleting game: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to delete the game: %v", err))
	}

	return RespondWithMessage(s, i, fmt.Sprintf("Game `%s` and all of its scores were deleted.", gameID))
}

// handleEnd handles the end subcommand
func (c *BurracoCommand) handleEnd(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	session := c.gameService.Session()
	if !session.Active() {
		return RespondWithError(s, i, "No game in progress.")
	}

	if _, err := c.gameService.EndSession(ctx, &game.EndSessionInput{}); err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Failed to end the session: %v", err))
	}

	return RespondWithMessage(s, i, "Game put away. Resume it any time with `/burraco resume`.")
}

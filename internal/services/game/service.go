package game

import (
	"context"
	"fmt"
	"sync"

	"github.com/burracoapp/scoretracker/internal/common/timefmt"
	"github.com/burracoapp/scoretracker/internal/models"
	gameRepo "github.com/burracoapp/scoretracker/internal/repositories/game"
	setRepo "github.com/burracoapp/scoretracker/internal/repositories/set"
)

// service implements the Service interface
type service struct {
	config   *Config
	gameRepo gameRepo.Repository
	setRepo  setRepo.Repository
	session  *Session
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}

	if cfg.SetRepo == nil {
		return nil, ErrNilSetRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUID == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		config:   cfg,
		gameRepo: cfg.GameRepo,
		setRepo:  cfg.SetRepo,
		session:  NewSession(cfg.UnknownTeamPolicy),
	}, nil
}

// Session exposes the current session for rendering
func (s *service) Session() *Session {
	return s.session
}

// CreateGame persists a new game and starts the session with it
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Nickname == "" {
		return nil, ErrMissingNickname
	}

	if input.Team1 == "" || input.Team2 == "" {
		return nil, ErrMissingTeamName
	}

	if input.FinalScore < 1 {
		return nil, ErrInvalidThreshold
	}

	game := &models.Game{
		ID:         s.config.UUID.NewUUID(),
		DateTime:   timefmt.Display(s.config.Clock.Now()),
		Nickname:   input.Nickname,
		FinalScore: input.FinalScore,
		Team1:      input.Team1,
		Team2:      input.Team2,
		Team3:      input.Team3,
		Status:     models.GameStatusInProgress,
	}

	err := s.gameRepo.CreateGame(ctx, &gameRepo.CreateGameInput{
		Game: game,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	s.session.Start(game)

	return &CreateGameOutput{
		Game: game,
	}, nil
}

// RecordRound persists one set per team and updates the session totals.
// All set creates for the round run concurrently and the round only applies
// to the session once every create has succeeded, so a persistence failure
// never desynchronizes displayed totals from stored history.
func (s *service) RecordRound(ctx context.Context, input *RecordRoundInput) (*RecordRoundOutput, error) {
	if !s.session.Active() {
		return nil, ErrNoActiveGame
	}

	game := s.session.Game()
	teams := s.session.Teams()

	if input == nil || len(input.Scores) != len(teams) {
		return nil, ErrScoreCountMismatch
	}

	// Build the set batch: each team's next set number is the count of its
	// prior sets at the moment of submission
	seen := make(map[string]bool, len(teams))
	sets := make([]*models.Set, 0, len(input.Scores))
	for _, score := range input.Scores {
		team := s.session.Team(score.Team)
		if team == nil {
			return nil, ErrUnknownTeam
		}

		if seen[score.Team] {
			return nil, ErrScoreCountMismatch
		}
		seen[score.Team] = true

		sets = append(sets, models.NewSet(score.Team, game.ID, len(team.Sets), score.Base, score.Points))
	}

	// Fire all creates at once and wait for the batch
	var wg sync.WaitGroup
	errs := make([]error, len(sets))
	for i, set := range sets {
		wg.Add(1)
		go func(i int, set *models.Set) {
			defer wg.Done()
			errs[i] = s.setRepo.CreateSet(ctx, &setRepo.CreateSetInput{
				Set: set,
			})
		}(i, set)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("failed to save round: %w", err)
		}
	}

	if err := s.session.RecordSets(sets); err != nil {
		return nil, err
	}

	output := &RecordRoundOutput{
		Sets: sets,
	}

	winner := Winner(s.session.Teams(), game.FinalScore)
	if winner == nil {
		return output, nil
	}

	output.Winner = winner
	output.GameOver = true

	// Flip the stored status once; completed games are left alone so the
	// transition stays idempotent
	if game.Status == models.GameStatusInProgress {
		err := s.gameRepo.SetGameStatus(ctx, &gameRepo.SetGameStatusInput{
			GameID: game.ID,
			Status: models.GameStatusCompleted,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to mark game completed: %w", err)
		}

		game.Status = models.GameStatusCompleted
	}

	return output, nil
}

// ResumeGame loads a stored game and rebuilds the session from its sets
func (s *service) ResumeGame(ctx context.Context, input *ResumeGameInput) (*ResumeGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, ErrGameNotFound
	}

	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{
		GameID: input.GameID,
	})
	if err != nil {
		return nil, err
	}

	setsOutput, err := s.setRepo.ListSetsForGame(ctx, &setRepo.ListSetsForGameInput{
		GameID: input.GameID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load sets for game: %w", err)
	}

	// Totals are always re-derived from the stored sets
	s.session.Start(game)
	if err := s.session.RecordSets(setsOutput.Sets); err != nil {
		return nil, err
	}

	return &ResumeGameOutput{
		Game:  game,
		Teams: s.session.Teams(),
	}, nil
}

// ListGames returns a nickname's games, most recent first
func (s *service) ListGames(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error) {
	if input == nil || input.Nickname == "" {
		return nil, ErrMissingNickname
	}

	output, err := s.gameRepo.ListGamesByNickname(ctx, &gameRepo.ListGamesByNicknameInput{
		Nickname: input.Nickname,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	return &ListGamesOutput{
		Games: output.Games,
	}, nil
}

// GetGameDetail returns a game with its ordered sets and per-team totals
func (s *service) GetGameDetail(ctx context.Context, input *GetGameDetailInput) (*GetGameDetailOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, ErrGameNotFound
	}

	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{
		GameID: input.GameID,
	})
	if err != nil {
		return nil, err
	}

	setsOutput, err := s.setRepo.ListSetsForGame(ctx, &setRepo.ListSetsForGameInput{
		GameID: input.GameID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load sets for game: %w", err)
	}

	totals := make(map[string]int)
	for _, set := range setsOutput.Sets {
		totals[set.Team] += set.Total
	}

	return &GetGameDetailOutput{
		Game:   game,
		Sets:   setsOutput.Sets,
		Totals: totals,
	}, nil
}

// DeleteGame removes a game and all of its sets. The cascade is best-effort:
// sets go first, then the game record, with no transaction across the two
// collections. If the session was playing this game it ends.
func (s *service) DeleteGame(ctx context.Context, input *DeleteGameInput) (*DeleteGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, ErrGameNotFound
	}

	err := s.setRepo.DeleteSetsForGame(ctx, &setRepo.DeleteSetsForGameInput{
		GameID: input.GameID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete sets: %w", err)
	}

	err = s.gameRepo.DeleteGame(ctx, &gameRepo.DeleteGameInput{
		GameID: input.GameID,
	})
	if err != nil {
		// Sets are already gone; the caller is left with an orphaned empty
		// game record
		return nil, fmt.Errorf("failed to delete game: %w", err)
	}

	if s.session.Active() && s.session.Game().ID == input.GameID {
		s.session.End()
	}

	return &DeleteGameOutput{
		Success: true,
	}, nil
}

// EndSession clears the active game without touching persistence
func (s *service) EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error) {
	s.session.End()

	return &EndSessionOutput{
		Success: true,
	}, nil
}

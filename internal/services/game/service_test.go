package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/burracoapp/scoretracker/internal/common/clock/mocks"
	"github.com/burracoapp/scoretracker/internal/common/timefmt"
	uuidMocks "github.com/burracoapp/scoretracker/internal/common/uuid/mocks"
	"github.com/burracoapp/scoretracker/internal/models"
	gameRepo "github.com/burracoapp/scoretracker/internal/repositories/game"
	gameMocks "github.com/burracoapp/scoretracker/internal/repositories/game/mocks"
	setRepo "github.com/burracoapp/scoretracker/internal/repositories/set"
	setMocks "github.com/burracoapp/scoretracker/internal/repositories/set/mocks"
)

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockGameRepo *gameMocks.MockRepository
	mockSetRepo  *setMocks.MockRepository
	mockClock    *clockMocks.MockClock
	mockUUID     *uuidMocks.MockUUID
	gameService  *service
	ctx          context.Context

	// Test data
	testTime   time.Time
	testGameID string

	// Reusable test fixtures
	expectedGame    *models.Game
	createGameInput *CreateGameInput
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGameRepo = gameMocks.NewMockRepository(s.mockCtrl)
	s.mockSetRepo = setMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	s.testTime = time.Date(2026, 8, 29, 10, 30, 0, 0, time.Local)
	s.testGameID = "test-game-id"

	// Set up the clock mock to return our test time
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	s.expectedGame = &models.Game{
		ID:         s.testGameID,
		DateTime:   timefmt.Display(s.testTime),
		Nickname:   "alice",
		FinalScore: 2005,
		Team1:      "Aquile",
		Team2:      "Falchi",
		Status:     models.GameStatusInProgress,
	}

	s.createGameInput = &CreateGameInput{
		Nickname:   "alice",
		FinalScore: 2005,
		Team1:      "Aquile",
		Team2:      "Falchi",
	}

	svc, err := New(&Config{
		GameRepo: s.mockGameRepo,
		SetRepo:  s.mockSetRepo,
		Clock:    s.mockClock,
		UUID:     s.mockUUID,
	})
	s.Require().NoError(err)
	s.gameService = svc
}

func (s *GameServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGameServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}

// startGame creates the fixture game through the service so the session is active
func (s *GameServiceTestSuite) startGame() {
	s.mockUUID.EXPECT().NewUUID().Return(s.testGameID)
	s.mockGameRepo.EXPECT().CreateGame(s.ctx, &gameRepo.CreateGameInput{
		Game: s.expectedGame,
	}).Return(nil)

	_, err := s.gameService.CreateGame(s.ctx, s.createGameInput)
	s.Require().NoError(err)
}

func (s *GameServiceTestSuite) TestCreateGame() {
	s.mockUUID.EXPECT().NewUUID().Return(s.testGameID)
	s.mockGameRepo.EXPECT().CreateGame(s.ctx, &gameRepo.CreateGameInput{
		Game: s.expectedGame,
	}).Return(nil)

	output, err := s.gameService.CreateGame(s.ctx, s.createGameInput)
	s.Require().NoError(err)
	s.Equal(s.expectedGame, output.Game)

	// The session now tracks the new game with zeroed teams
	s.True(s.gameService.Session().Active())
	s.Require().Len(s.gameService.Session().Teams(), 2)
	s.Zero(s.gameService.Session().Team("Aquile").TotalScore)
}

func (s *GameServiceTestSuite) TestCreateGameThreeTeams() {
	s.expectedGame.Team3 = "Gufi"
	s.createGameInput.Team3 = "Gufi"

	s.mockUUID.EXPECT().NewUUID().Return(s.testGameID)
	s.mockGameRepo.EXPECT().CreateGame(s.ctx, &gameRepo.CreateGameInput{
		Game: s.expectedGame,
	}).Return(nil)

	_, err := s.gameService.CreateGame(s.ctx, s.createGameInput)
	s.Require().NoError(err)
	s.Len(s.gameService.Session().Teams(), 3)
}

func (s *GameServiceTestSuite) TestCreateGameValidation() {
	testCases := []struct {
		name     string
		mutate   func(*CreateGameInput)
		expected error
	}{
		{"missing nickname", func(in *CreateGameInput) { in.Nickname = "" }, ErrMissingNickname},
		{"missing team1", func(in *CreateGameInput) { in.Team1 = "" }, ErrMissingTeamName},
		{"missing team2", func(in *CreateGameInput) { in.Team2 = "" }, ErrMissingTeamName},
		{"zero threshold", func(in *CreateGameInput) { in.FinalScore = 0 }, ErrInvalidThreshold},
	}

	for _, tc := range testCases {
		input := *s.createGameInput
		tc.mutate(&input)

		_, err := s.gameService.CreateGame(s.ctx, &input)
		s.ErrorIs(err, tc.expected, tc.name)
		s.False(s.gameService.Session().Active(), tc.name)
	}
}

func (s *GameServiceTestSuite) TestCreateGamePersistFailure() {
	s.mockUUID.EXPECT().NewUUID().Return(s.testGameID)
	s.mockGameRepo.EXPECT().CreateGame(s.ctx, gomock.Any()).Return(GameError("backend rejected the write"))

	_, err := s.gameService.CreateGame(s.ctx, s.createGameInput)
	s.Error(err)

	// The session stays idle when persistence fails
	s.False(s.gameService.Session().Active())
}

func (s *GameServiceTestSuite) TestRecordRound() {
	s.startGame()

	s.mockSetRepo.EXPECT().CreateSet(s.ctx, &setRepo.CreateSetInput{
		Set: models.NewSet("Aquile", s.testGameID, 0, 80, 40),
	}).Return(nil)
	s.mockSetRepo.EXPECT().CreateSet(s.ctx, &setRepo.CreateSetInput{
		Set: models.NewSet("Falchi", s.testGameID, 0, 60, 0),
	}).Return(nil)

	output, err := s.gameService.RecordRound(s.ctx, &RecordRoundInput{
		Scores: []TeamRoundScore{
			{Team: "Aquile", Base: 80, Points: 40},
			{Team: "Falchi", Base: 60, Points: 0},
		},
	})
	s.Require().NoError(err)

	s.Nil(output.Winner)
	s.False(output.GameOver)
	s.Equal(120, s.gameService.Session().Team("Aquile").TotalScore)
	s.Equal(60, s.gameService.Session().Team("Falchi").TotalScore)
}

func (s *GameServiceTestSuite) TestRecordRoundWinner() {
	s.startGame()

	s.mockSetRepo.EXPECT().CreateSet(s.ctx, &setRepo.CreateSetInput{
		Set: models.NewSet("Aquile", s.testGameID, 0, 2000, 10),
	}).Return(nil)
	s.mockSetRepo.EXPECT().CreateSet(s.ctx, &setRepo.CreateSetInput{
		Set: models.NewSet("Falchi", s.testGameID, 0, 1990, 0),
	}).Return(nil)

	// Exactly one status transition
	s.mockGameRepo.EXPECT().SetGameStatus(s.ctx, &gameRepo.SetGameStatusInput{
		GameID: s.testGameID,
		Status: models.GameStatusCompleted,
	}).Return(nil).Times(1)

	output, err := s.gameService.RecordRound(s.ctx, &RecordRoundInput{
		Scores: []TeamRoundScore{
			{Team: "Aquile", Base: 2000, Points: 10},
			{Team: "Falchi", Base: 1990, Points: 0},
		},
	})
	s.Require().NoError(err)

	s.Require().NotNil(output.Winner)
	s.Equal("Aquile", output.Winner.Name)
	s.True(output.GameOver)
	s.Equal(models.GameStatusCompleted, s.gameService.Session().Game().Status)

	// A further round on the completed game must not flip the status again
	s.mockSetRepo.EXPECT().CreateSet(s.ctx, &setRepo.CreateSetInput{
		Set: models.NewSet("Aquile", s.testGameID, 1, 10, 0),
	}).Return(nil)
	s.mockSetRepo.EXPECT().CreateSet(s.ctx, &setRepo.CreateSetInput{
		Set: models.NewSet("Falchi", s.testGameID, 1, 10, 0),
	}).Return(nil)

	output, err = s.gameService.RecordRound(s.ctx, &RecordRoundInput{
		Scores: []TeamRoundScore{
			{Team: "Aquile", Base: 10, Points: 0},
			{Team: "Falchi", Base: 10, Points: 0},
		},
	})
	s.Require().NoError(err)
	s.True(output.GameOver)
}

func (s *GameServiceTestSuite) TestRecordRoundTie() {
	s.startGame()

	s.mockSetRepo.EXPECT().CreateSet(s.ctx, &setRepo.CreateSetInput{
		Set: models.NewSet("Aquile", s.testGameID, 0, 2000, 5),
	}).Return(nil)
	s.mockSetRepo.EXPECT().CreateSet(s.ctx, &setRepo.CreateSetInput{
		Set: models.NewSet("Falchi", s.testGameID, 0, 2005, 0),
	}).Return(nil)

	// Both teams at exactly the threshold: no winner, no status update
	output, err := s.gameService.RecordRound(s.ctx, &RecordRoundInput{
		Scores: []TeamRoundScore{
			{Team: "Aquile", Base: 2000, Points: 5},
			{Team: "Falchi", Base: 2005, Points: 0},
		},
	})
	s.Require().NoError(err)

	s.Nil(output.Winner)
	s.False(output.GameOver)
	s.Equal(models.GameStatusInProgress, s.gameService.Session().Game().Status)
}

func (s *GameServiceTestSuite) TestRecordRoundNoActiveGame() {
	_, err := s.gameService.RecordRound(s.ctx, &RecordRoundInput{
		Scores: []TeamRoundScore{
			{Team: "Aquile", Base: 80, Points: 40},
		},
	})
	s.ErrorIs(err, ErrNoActiveGame)
}

func (s *GameServiceTestSuite) TestRecordRoundScoreCountMismatch() {
	s.startGame()

	_, err := s.gameService.RecordRound(s.ctx, &RecordRoundInput{
		Scores: []TeamRoundScore{
			{Team: "Aquile", Base: 80, Points: 40},
		},
	})
	s.ErrorIs(err, ErrScoreCountMismatch)
}

func (s *GameServiceTestSuite) TestRecordRoundDuplicateTeam() {
	s.startGame()

	_, err := s.gameService.RecordRound(s.ctx, &RecordRoundInput{
		Scores: []TeamRoundScore{
			{Team: "Aquile", Base: 80, Points: 40},
			{Team: "Aquile", Base: 60, Points: 0},
		},
	})
	s.ErrorIs(err, ErrScoreCountMismatch)
}

func (s *GameServiceTestSuite) TestRecordRoundUnknownTeam() {
	s.startGame()

	_, err := s.gameService.RecordRound(s.ctx, &RecordRoundInput{
		Scores: []TeamRoundScore{
			{Team: "Aquile", Base: 80, Points: 40},
			{Team: "Lupi", Base: 60, Points: 0},
		},
	})
	s.ErrorIs(err, ErrUnknownTeam)
}

func (s *GameServiceTestSuite) TestRecordRoundPersistFailure() {
	s.startGame()

	s.mockSetRepo.EXPECT().CreateSet(s.ctx, &setRepo.CreateSetInput{
		Set: models.NewSet("Aquile", s.testGameID, 0, 80, 40),
	}).Return(nil)
	s.mockSetRepo.EXPECT().CreateSet(s.ctx, &setRepo.CreateSetInput{
		Set: models.NewSet("Falchi", s.testGameID, 0, 60, 0),
	}).Return(GameError("backend rejected the write"))

	_, err := s.gameService.RecordRound(s.ctx, &RecordRoundInput{
		Scores: []TeamRoundScore{
			{Team: "Aquile", Base: 80, Points: 40},
			{Team: "Falchi", Base: 60, Points: 0},
		},
	})
	s.Error(err)

	// Local totals stay in sync with what was actually persisted: nothing
	s.Zero(s.gameService.Session().Team("Aquile").TotalScore)
	s.Zero(s.gameService.Session().Team("Falchi").TotalScore)
}

func (s *GameServiceTestSuite) TestResumeGame() {
	storedSets := []*models.Set{
		models.NewSet("Aquile", s.testGameID, 0, 80, 40),
		models.NewSet("Falchi", s.testGameID, 0, 60, 0),
		models.NewSet("Aquile", s.testGameID, 1, 100, 0),
	}

	s.mockGameRepo.EXPECT().GetGame(s.ctx, &gameRepo.GetGameInput{
		GameID: s.testGameID,
	}).Return(s.expectedGame, nil)
	s.mockSetRepo.EXPECT().ListSetsForGame(s.ctx, &setRepo.ListSetsForGameInput{
		GameID: s.testGameID,
	}).Return(&setRepo.ListSetsForGameOutput{Sets: storedSets}, nil)

	output, err := s.gameService.ResumeGame(s.ctx, &ResumeGameInput{
		GameID: s.testGameID,
	})
	s.Require().NoError(err)

	s.Equal(s.expectedGame, output.Game)
	s.True(s.gameService.Session().Active())
	s.Equal(220, s.gameService.Session().Team("Aquile").TotalScore)
	s.Equal(60, s.gameService.Session().Team("Falchi").TotalScore)
	s.Len(s.gameService.Session().Team("Aquile").Sets, 2)
}

func (s *GameServiceTestSuite) TestResumeGameNotFound() {
	s.mockGameRepo.EXPECT().GetGame(s.ctx, gomock.Any()).Return(nil, gameRepo.ErrGameNotFound)

	_, err := s.gameService.ResumeGame(s.ctx, &ResumeGameInput{
		GameID: "missing-game-id",
	})
	s.ErrorIs(err, gameRepo.ErrGameNotFound)
	s.False(s.gameService.Session().Active())
}

func (s *GameServiceTestSuite) TestListGames() {
	s.mockGameRepo.EXPECT().ListGamesByNickname(s.ctx, &gameRepo.ListGamesByNicknameInput{
		Nickname: "alice",
	}).Return(&gameRepo.ListGamesByNicknameOutput{
		Games: []*models.Game{s.expectedGame},
	}, nil)

	output, err := s.gameService.ListGames(s.ctx, &ListGamesInput{Nickname: "alice"})
	s.Require().NoError(err)
	s.Require().Len(output.Games, 1)
	s.Equal(s.expectedGame, output.Games[0])
}

func (s *GameServiceTestSuite) TestGetGameDetail() {
	storedSets := []*models.Set{
		models.NewSet("Aquile", s.testGameID, 0, 80, 40),
		models.NewSet("Falchi", s.testGameID, 0, 60, 0),
		models.NewSet("Aquile", s.testGameID, 1, 100, 0),
	}

	s.mockGameRepo.EXPECT().GetGame(s.ctx, &gameRepo.GetGameInput{
		GameID: s.testGameID,
	}).Return(s.expectedGame, nil)
	s.mockSetRepo.EXPECT().ListSetsForGame(s.ctx, &setRepo.ListSetsForGameInput{
		GameID: s.testGameID,
	}).Return(&setRepo.ListSetsForGameOutput{Sets: storedSets}, nil)

	output, err := s.gameService.GetGameDetail(s.ctx, &GetGameDetailInput{
		GameID: s.testGameID,
	})
	s.Require().NoError(err)

	s.Equal(s.expectedGame, output.Game)
	s.Len(output.Sets, 3)
	s.Equal(map[string]int{"Aquile": 220, "Falchi": 60}, output.Totals)

	// Inspecting history must not disturb the session
	s.False(s.gameService.Session().Active())
}

func (s *GameServiceTestSuite) TestDeleteGameCascade() {
	// Sets are removed before the game record
	gomock.InOrder(
		s.mockSetRepo.EXPECT().DeleteSetsForGame(s.ctx, &setRepo.DeleteSetsForGameInput{
			GameID: s.testGameID,
		}).Return(nil),
		s.mockGameRepo.EXPECT().DeleteGame(s.ctx, &gameRepo.DeleteGameInput{
			GameID: s.testGameID,
		}).Return(nil),
	)

	output, err := s.gameService.DeleteGame(s.ctx, &DeleteGameInput{
		GameID: s.testGameID,
	})
	s.Require().NoError(err)
	s.True(output.Success)
}

func (s *GameServiceTestSuite) TestDeleteActiveGameEndsSession() {
	s.startGame()

	s.mockSetRepo.EXPECT().DeleteSetsForGame(s.ctx, gomock.Any()).Return(nil)
	s.mockGameRepo.EXPECT().DeleteGame(s.ctx, gomock.Any()).Return(nil)

	_, err := s.gameService.DeleteGame(s.ctx, &DeleteGameInput{
		GameID: s.testGameID,
	})
	s.Require().NoError(err)
	s.False(s.gameService.Session().Active())
}

func (s *GameServiceTestSuite) TestDeleteGameSetsFailure() {
	s.mockSetRepo.EXPECT().DeleteSetsForGame(s.ctx, gomock.Any()).Return(GameError("backend rejected the delete"))

	_, err := s.gameService.DeleteGame(s.ctx, &DeleteGameInput{
		GameID: s.testGameID,
	})
	s.Error(err)
}

func (s *GameServiceTestSuite) TestEndSession() {
	s.startGame()

	output, err := s.gameService.EndSession(s.ctx, &EndSessionInput{})
	s.Require().NoError(err)
	s.True(output.Success)
	s.False(s.gameService.Session().Active())
}

package game

import "github.com/burracoapp/scoretracker/internal/models"

type CreateGameInput struct {
	Game *models.Game
}

type GetGameInput struct {
	GameID string
}

type ListGamesByNicknameInput struct {
	Nickname string
}

type ListGamesByNicknameOutput struct {
	Games []*models.Game
}

type SetGameStatusInput struct {
	GameID string
	Status models.GameStatus
}

type DeleteGameInput struct {
	GameID string
}

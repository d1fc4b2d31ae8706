package set

import "github.com/burracoapp/scoretracker/internal/models"

type CreateSetInput struct {
	Set *models.Set
}

type ListSetsForGameInput struct {
	GameID string
}

type ListSetsForGameOutput struct {
	Sets []*models.Set
}

type DeleteSetsForGameInput struct {
	GameID string
}

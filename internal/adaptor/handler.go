package adaptor

import (
	"lotr-api/internal/oneapi"
	"lotr-api/internal/usecase"
	"lotr-api/pkg/database"

	"go.uber.org/zap"
)

type Handler struct {
	Review    *ReviewHandler
	Movie     *MovieHandler
	Character *CharacterHandler
	Health    *HealthHandler
}

func NewHandler(service *usecase.Service, client *oneapi.Client, db database.PgxIface, log *zap.Logger) *Handler {
	return &Handler{
		Review:    NewReviewHandler(service.Review, log),
		Movie:     NewMovieHandler(client, log),
		Character: NewCharacterHandler(client, log),
		Health:    NewHealthHandler(db, log),
	}
}

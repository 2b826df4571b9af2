package contracts

import (
	"context"
	"curaflow-service/internal/app/models"
	"curaflow-service/internal/pkg/dto/requests"
)

type TeamUsecase interface {
	CreateTeam(ctx context.Context, request *requests.CreateTeam) (*models.Team, error)
	FindTeamByID(ctx context.Context, teamID string) (*models.Team, error)
	FindAllTeams(ctx context.Context) ([]models.Team, error)
}

type TeamRepository interface {
	CreateTeam(ctx context.Context, teamModel *models.Team) (teamID string, err error)
	FindByID(ctx context.Context, teamID string) (*models.Team, error)
	FindAll(ctx context.Context) ([]models.Team, error)
}

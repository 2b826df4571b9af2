package teams

import (
	"context"
	"curaflow-service/internal/app/contracts"
	"curaflow-service/internal/app/models"
	"curaflow-service/internal/pkg/dto/requests"
	"curaflow-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.uber.org/zap"
)

type teamUsecase struct {
	TeamRepository contracts.TeamRepository
	Log            *zap.Logger
}

var (
	teamUsecaseInstance contracts.TeamUsecase
	onceTeamUsecase     sync.Once
)

func NewTeamUsecase(
	teamRepository contracts.TeamRepository,
	logger *zap.Logger,
) contracts.TeamUsecase {
	onceTeamUsecase.Do(func() {
		teamUsecaseInstance = &teamUsecase{
			TeamRepository: teamRepository,
			Log:            logger,
		}
	})
	return teamUsecaseInstance
}

func (uc *teamUsecase) CreateTeam(ctx context.Context, request *requests.CreateTeam) (*models.Team, error) {
	now := time.Now()
	team := &models.Team{
		Name:             request.Name,
		WhatsAppNumber:   request.WhatsAppNumber,
		WhatsAppNumberID: request.WhatsAppNumberID,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	teamID, err := uc.TeamRepository.CreateTeam(ctx, team)
	if err != nil {
		return nil, err
	}
	team.ID = teamID
	return team, nil
}

func (uc *teamUsecase) FindTeamByID(ctx context.Context, teamID string) (*models.Team, error) {
	team, err := uc.TeamRepository.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, exceptions.ErrTeamNotFound(nil)
	}
	return team, nil
}

func (uc *teamUsecase) FindAllTeams(ctx context.Context) ([]models.Team, error) {
	return uc.TeamRepository.FindAll(ctx)
}

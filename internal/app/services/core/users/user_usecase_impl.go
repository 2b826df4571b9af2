package users

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

type userUsecase struct {
	UserRepository contracts.UserRepository
	TeamRepository contracts.TeamRepository
	Log            *zap.Logger
}

var (
	userUsecaseInstance contracts.UserUsecase
	onceUserUsecase     sync.Once
)

func NewUserUsecase(
	userRepository contracts.UserRepository,
	teamRepository contracts.TeamRepository,
	logger *zap.Logger,
) contracts.UserUsecase {
	onceUserUsecase.Do(func() {
		userUsecaseInstance = &userUsecase{
			UserRepository: userRepository,
			TeamRepository: teamRepository,
			Log:            logger,
		}
	})
	return userUsecaseInstance
}

func (uc *userUsecase) CreateUser(ctx context.Context, request *requests.CreateUser) (*models.User, error) {
	team, err := uc.TeamRepository.FindByID(ctx, request.TeamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, exceptions.ErrTeamNotFound(nil)
	}

	now := time.Now()
	user := &models.User{
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Title:     request.Title,
		Email:     request.Email,
		TeamID:    request.TeamID,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = userID
	return user, nil
}

func (uc *userUsecase) FindUserByID(ctx context.Context, userID string) (*models.User, error) {
	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotFound(nil)
	}
	return user, nil
}

func (uc *userUsecase) FindAllUsers(ctx context.Context) ([]models.User, error) {
	return uc.UserRepository.FindAll(ctx)
}

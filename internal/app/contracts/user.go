package contracts

import (
	"context"
	"curaflow-service/internal/app/models"
	"curaflow-service/internal/pkg/dto/requests"
)

type UserUsecase interface {
	CreateUser(ctx context.Context, request *requests.CreateUser) (*models.User, error)
	FindUserByID(ctx context.Context, userID string) (*models.User, error)
	FindAllUsers(ctx context.Context) ([]models.User, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, userModel *models.User) (userID string, err error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
}

package contracts

import (
	"context"
	"curaflow-service/internal/app/models"
	"curaflow-service/internal/pkg/dto/requests"
)

type TemplateUsecase interface {
	CreateTemplate(ctx context.Context, request *requests.CreateTemplate) (*models.Template, error)
	FindTemplateByID(ctx context.Context, templateID string) (*models.Template, error)
	FindAllTemplates(ctx context.Context) ([]models.Template, error)
}

type TemplateRepository interface {
	CreateTemplate(ctx context.Context, templateModel *models.Template) (templateID string, err error)
	FindByID(ctx context.Context, templateID string) (*models.Template, error)
	FindAll(ctx context.Context) ([]models.Template, error)
}

package templates

import (
	"context"
	"curaflow-service/internal/app/config"
	"curaflow-service/internal/app/contracts"
	"curaflow-service/internal/app/models"
	"curaflow-service/internal/pkg/constvars"
	"curaflow-service/internal/pkg/dto/requests"
	"curaflow-service/internal/pkg/exceptions"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type templateUsecase struct {
	TemplateRepository contracts.TemplateRepository
	RedisRepository    contracts.RedisRepository
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

var (
	templateUsecaseInstance contracts.TemplateUsecase
	onceTemplateUsecase     sync.Once
)

func NewTemplateUsecase(
	templateRepository contracts.TemplateRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.TemplateUsecase {
	onceTemplateUsecase.Do(func() {
		templateUsecaseInstance = &templateUsecase{
			TemplateRepository: templateRepository,
			RedisRepository:    redisRepository,
			InternalConfig:     internalConfig,
			Log:                logger,
		}
	})
	return templateUsecaseInstance
}

func (uc *templateUsecase) CreateTemplate(ctx context.Context, request *requests.CreateTemplate) (*models.Template, error) {
	template, err := models.NewTemplate(
		request.Title,
		request.Owner,
		request.TeamID,
		request.Duration,
		request.Instrument,
		request.AnswerSchemes,
		request.QuestionsList,
	)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	template.CreatedAt = now
	template.UpdatedAt = now

	templateID, err := uc.TemplateRepository.CreateTemplate(ctx, template)
	if err != nil {
		return nil, err
	}
	template.ID = templateID
	return template, nil
}

// FindTemplateByID reads through the cache. Templates are immutable once
// instantiated, so a stale entry can only lag a template that nothing
// references yet.
func (uc *templateUsecase) FindTemplateByID(ctx context.Context, templateID string) (*models.Template, error) {
	cacheKey := fmt.Sprintf(constvars.RedisKeyTemplateCacheFormat, templateID)

	cached, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var template models.Template
		if err := json.Unmarshal([]byte(cached), &template); err == nil {
			return &template, nil
		}
	}

	template, err := uc.TemplateRepository.FindByID(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, exceptions.ErrTemplateNotFound(nil)
	}

	ttl := time.Duration(uc.InternalConfig.App.TemplateCacheTTLInMinutes) * time.Minute
	if err := uc.RedisRepository.Set(ctx, cacheKey, template, ttl); err != nil {
		uc.Log.Warn("TemplateUsecase.FindTemplateByID failed to cache template",
			zap.String(constvars.LoggingTemplateIDKey, templateID),
			zap.Error(err),
		)
	}

	return template, nil
}

func (uc *templateUsecase) FindAllTemplates(ctx context.Context) ([]models.Template, error) {
	return uc.TemplateRepository.FindAll(ctx)
}

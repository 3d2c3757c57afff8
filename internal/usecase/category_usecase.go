package usecase

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/sahil00000001/SMFurnishAdmin/internal/clients"
	"github.com/sahil00000001/SMFurnishAdmin/internal/domain"
	"github.com/sahil00000001/SMFurnishAdmin/internal/mapper"
)

var _ domain.CategoryUseCase = (*categoryUseCase)(nil)

type categoryUseCase struct {
	backend clients.BackendClient
	log     *logrus.Logger
}

func NewCategoryUseCase(backend clients.BackendClient, logger *logrus.Logger) domain.CategoryUseCase {
	return &categoryUseCase{
		backend: backend,
		log:     logger,
	}
}

type categoryResponse struct {
	Data *mapper.RawCategory `json:"data"`
}

func (uc *categoryUseCase) GetAll(ctx context.Context) ([]domain.Category, error) {
	var res categoryListResponse
	if err := uc.backend.DoJSON(ctx, http.MethodGet, "/api/categories", nil, &res); err != nil {
		uc.log.Errorf("Use Case: Failed to load categories: %v", err)
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	return mapper.Categories(res.Data), nil
}

func (uc *categoryUseCase) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	var res categoryResponse
	if err := uc.backend.DoJSON(ctx, http.MethodGet, "/api/categories/"+id, nil, &res); err != nil {
		uc.log.Warnf("Use Case: Failed to load category %s: %v", id, err)
		return nil, fmt.Errorf("failed to load category %s: %w", id, err)
	}
	if res.Data == nil {
		return nil, domain.ErrCategoryNotFound
	}
	category := mapper.Category(*res.Data)
	return &category, nil
}

func (uc *categoryUseCase) Create(ctx context.Context, in domain.CategoryInput) (*domain.Category, error) {
	external := map[string]any{
		"name":        in.Name,
		"description": in.Description,
	}

	var res categoryResponse
	if err := uc.backend.DoJSON(ctx, http.MethodPost, "/api/categories", external, &res); err != nil {
		uc.log.Errorf("Use Case: Failed to create category %q: %v", in.Name, err)
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	if res.Data == nil {
		return nil, fmt.Errorf("backend returned no category data on create")
	}

	category := mapper.Category(*res.Data)
	uc.log.Infof("Use Case: Created category %s (%q)", category.ID, category.Name)
	return &category, nil
}

func (uc *categoryUseCase) Delete(ctx context.Context, id string) (map[string]any, error) {
	var body map[string]any
	if err := uc.backend.DoJSON(ctx, http.MethodDelete, "/api/categories/"+id, nil, &body); err != nil {
		uc.log.Errorf("Use Case: Failed to delete category %s: %v", id, err)
		return nil, fmt.Errorf("failed to delete category %s: %w", id, err)
	}
	uc.log.Infof("Use Case: Deleted category %s", id)
	return body, nil
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/aftab6363/Spare-Parts-Depot/internal/cache"
	"github.com/aftab6363/Spare-Parts-Depot/internal/errors"
	"github.com/aftab6363/Spare-Parts-Depot/internal/model"
	"github.com/aftab6363/Spare-Parts-Depot/internal/repository"
)

const partCacheTTL = 5 * time.Minute

// CreatePartInput carries the fields of a new catalog part.
type CreatePartInput struct {
	Name         string
	Brand        string
	Category     string
	ModelNumber  string
	Description  string
	Price        decimal.Decimal
	CountInStock int
	Image        string
}

// UpdatePartInput is a partial update: nil fields are left unchanged.
// A present zero value (price=0, countInStock=0) is applied as given.
type UpdatePartInput struct {
	Name         *string
	Brand        *string
	Category     *string
	ModelNumber  *string
	Description  *string
	Price        *decimal.Decimal
	CountInStock *int
	Image        *string
}

// PartService handles catalog operations.
type PartService interface {
	List(ctx context.Context, filter repository.PartFilter) ([]model.Part, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Part, error)
	Create(ctx context.Context, adminID uuid.UUID, input CreatePartInput) (*model.Part, error)
	Update(ctx context.Context, id uuid.UUID, input UpdatePartInput) (*model.Part, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type partService struct {
	repo  repository.PartRepository
	cache *cache.Client
}

// NewPartService creates a new part service.
func NewPartService(repo repository.PartRepository, cache *cache.Client) PartService {
	return &partService{
		repo:  repo,
		cache: cache,
	}
}

// partCacheKey is the Redis key for one cached catalog part. Shared
// with the order service, which invalidates it when stock changes.
func partCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("part:%s", id.String())
}

// List returns catalog parts matching the filter.
func (s *partService) List(ctx context.Context, filter repository.PartFilter) ([]model.Part, error) {
	parts, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}
	return parts, nil
}

// Get retrieves a part by ID with caching.
func (s *partService) Get(ctx context.Context, id uuid.UUID) (*model.Part, error) {
	var cached model.Part
	if s.cache.GetJSON(ctx, partCacheKey(id), &cached) {
		return &cached, nil
	}

	part, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPartNotFound
		}
		return nil, fmt.Errorf("find part: %w", err)
	}

	s.cache.SetJSON(ctx, partCacheKey(id), part, partCacheTTL)
	return part, nil
}

// Create adds a part to the catalog, owned by the creating admin.
func (s *partService) Create(ctx context.Context, adminID uuid.UUID, input CreatePartInput) (*model.Part, error) {
	part := &model.Part{
		UserID:       adminID,
		Name:         input.Name,
		Brand:        input.Brand,
		Category:     input.Category,
		ModelNumber:  input.ModelNumber,
		Description:  input.Description,
		Price:        input.Price,
		CountInStock: input.CountInStock,
		Image:        input.Image,
	}

	if err := s.repo.Create(ctx, part); err != nil {
		return nil, fmt.Errorf("create part: %w", err)
	}
	return part, nil
}

// Update applies exactly the supplied fields to an existing part.
func (s *partService) Update(ctx context.Context, id uuid.UUID, input UpdatePartInput) (*model.Part, error) {
	part, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPartNotFound
		}
		return nil, fmt.Errorf("find part: %w", err)
	}

	if input.Name != nil {
		part.Name = *input.Name
	}
	if input.Brand != nil {
		part.Brand = *input.Brand
	}
	if input.Category != nil {
		part.Category = *input.Category
	}
	if input.ModelNumber != nil {
		part.ModelNumber = *input.ModelNumber
	}
	if input.Description != nil {
		part.Description = *input.Description
	}
	if input.Price != nil {
		part.Price = *input.Price
	}
	if input.CountInStock != nil {
		part.CountInStock = *input.CountInStock
	}
	if input.Image != nil {
		part.Image = *input.Image
	}

	if err := s.repo.Save(ctx, part); err != nil {
		return nil, fmt.Errorf("save part: %w", err)
	}

	_ = s.cache.Delete(ctx, partCacheKey(id))
	return part, nil
}

// Delete removes a part from the catalog.
func (s *partService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrPartNotFound
		}
		return fmt.Errorf("find part: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete part: %w", err)
	}

	_ = s.cache.Delete(ctx, partCacheKey(id))
	return nil
}

package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/aftab6363/Spare-Parts-Depot/internal/model"
)

// likeEscaper makes a keyword safe for use inside a LIKE pattern so
// that % and _ match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// Sort tokens accepted by PartFilter. Anything else sorts newest-first.
const (
	SortPriceAsc  = "low"
	SortPriceDesc = "high"
)

// PartFilter narrows and orders a catalog listing. Keyword matches the
// model number case-insensitively; Category "All" or "" means no
// category filter.
type PartFilter struct {
	Keyword  string
	Category string
	Sort     string
}

// PartRepository defines catalog persistence operations.
type PartRepository interface {
	Create(ctx context.Context, part *model.Part) error
	Save(ctx context.Context, part *model.Part) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Part, error)
	// FindByIDForUpdate locks the part row for the current transaction.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Part, error)
	List(ctx context.Context, filter PartFilter) ([]model.Part, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type partRepository struct {
	db *gorm.DB
}

// NewPartRepository creates a new part repository.
func NewPartRepository(db *gorm.DB) PartRepository {
	return &partRepository{db: db}
}

// Create creates a new part.
func (r *partRepository) Create(ctx context.Context, part *model.Part) error {
	return r.db.WithContext(ctx).Create(part).Error
}

// Save persists all fields of an existing part.
func (r *partRepository) Save(ctx context.Context, part *model.Part) error {
	return r.db.WithContext(ctx).Save(part).Error
}

// FindByID finds a part by ID.
func (r *partRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Part, error) {
	var part model.Part
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&part).Error; err != nil {
		return nil, err
	}
	return &part, nil
}

// FindByIDForUpdate finds a part by ID with a row-level lock.
func (r *partRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Part, error) {
	var part model.Part
	if err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).First(&part).Error; err != nil {
		return nil, err
	}
	return &part, nil
}

// List returns parts matching the filter in the requested order.
func (r *partRepository) List(ctx context.Context, filter PartFilter) ([]model.Part, error) {
	q := r.db.WithContext(ctx).Model(&model.Part{})

	if filter.Keyword != "" {
		q = q.Where("LOWER(model_number) LIKE ?", "%"+likeEscaper.Replace(strings.ToLower(filter.Keyword))+"%")
	}
	if filter.Category != "" && filter.Category != "All" {
		q = q.Where("category = ?", filter.Category)
	}

	switch filter.Sort {
	case SortPriceAsc:
		q = q.Order("price ASC")
	case SortPriceDesc:
		q = q.Order("price DESC")
	default:
		q = q.Order("created_at DESC")
	}

	var parts []model.Part
	if err := q.Find(&parts).Error; err != nil {
		return nil, err
	}
	return parts, nil
}

// Delete soft-deletes a part.
func (r *partRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Part{}).Error
}

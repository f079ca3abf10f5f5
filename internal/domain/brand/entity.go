package brand

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("brand name cannot be empty")
	ErrEmptyCategory = errors.New("brand category cannot be empty")
)

// Brand is a read-only input to exclusivity rule extraction: the engine only
// cares about its id and category.
type Brand struct {
	id        uuid.UUID
	userID    uuid.UUID
	name      string
	category  string
	createdAt time.Time
	updatedAt time.Time
}

func NewBrand(userID uuid.UUID, name, category string) (*Brand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	category = normalizeCategory(category)
	if category == "" {
		return nil, ErrEmptyCategory
	}
	return &Brand{
		id:       uuid.New(),
		userID:   userID,
		name:     name,
		category: category,
	}, nil
}

func ReconstructBrand(id, userID uuid.UUID, name, category string, createdAt, updatedAt time.Time) *Brand {
	return &Brand{
		id:        id,
		userID:    userID,
		name:      name,
		category:  normalizeCategory(category),
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Category comparisons are case-insensitive throughout the engine.
func normalizeCategory(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (b *Brand) ID() uuid.UUID        { return b.id }
func (b *Brand) UserID() uuid.UUID    { return b.userID }
func (b *Brand) Name() string         { return b.name }
func (b *Brand) Category() string     { return b.category }
func (b *Brand) CreatedAt() time.Time { return b.createdAt }
func (b *Brand) UpdatedAt() time.Time { return b.updatedAt }

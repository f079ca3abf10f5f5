//go:build unit || e2e

package builder

import (
	"time"

	dombrand "dealdesk/internal/domain/brand"
	reqdto "dealdesk/internal/handler/dto/request"
	"dealdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type BrandBuilder struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Category  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewBrandBuilder() *BrandBuilder {
	now := time.Now()
	return &BrandBuilder{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Name:      "Acme Fitness",
		Category:  "fitness",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *BrandBuilder) With(mutate func(*BrandBuilder)) *BrandBuilder {
	mutate(b)
	return b
}

func (b *BrandBuilder) BuildDomain() *dombrand.Brand {
	return dombrand.ReconstructBrand(b.ID, b.UserID, b.Name, b.Category, b.CreatedAt, b.UpdatedAt)
}

func (b *BrandBuilder) BuildCreateRequestDTO() reqdto.CreateBrandRequest {
	return reqdto.CreateBrandRequest{
		Name:     b.Name,
		Category: b.Category,
	}
}

func (b *BrandBuilder) BuildViewQuery() *queries.BrandView {
	return &queries.BrandView{
		ID:        b.ID,
		Name:      b.Name,
		Category:  b.Category,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

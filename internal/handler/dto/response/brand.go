package response

import (
	"dealdesk/internal/usecase/queries"
)

type BrandResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

func FromBrandView(v *queries.BrandView) *BrandResponse {
	return &BrandResponse{
		ID:        v.ID.String(),
		Name:      v.Name,
		Category:  v.Category,
		CreatedAt: v.CreatedAt.Unix(),
		UpdatedAt: v.UpdatedAt.Unix(),
	}
}

func FromBrandList(items []*queries.BrandView) []*BrandResponse {
	res := make([]*BrandResponse, len(items))
	for i, it := range items {
		res[i] = FromBrandView(it)
	}
	return res
}

package conflict

import (
	"errors"
	"time"

	"dealdesk/internal/domain/brand"
	"dealdesk/internal/domain/deal"

	"github.com/google/uuid"
)

var (
	ErrInvalidRuleWindow = errors.New("exclusivity rule window start must be before end")
	ErrBrandMismatch     = errors.New("brand does not belong to the deal")
)

// ExclusivityRule is the normalized projection of a deal's exclusivity clause.
// It is derived on demand and never persisted.
type ExclusivityRule struct {
	DealID             uuid.UUID
	BrandID            uuid.UUID
	Category           string
	CompetitorBrandIDs map[uuid.UUID]struct{}
	Window             Interval
	Scope              deal.Scope
}

// ExtractRule projects a deal's exclusivity clause into a rule. Deals without
// a clause produce nil and stay eligible for scheduling checks only. The
// window is re-validated here because reconstructed rows bypass clause
// construction.
func ExtractRule(d *deal.Deal, b *brand.Brand) (*ExclusivityRule, error) {
	if b.ID() != d.BrandID() {
		return nil, ErrBrandMismatch
	}

	clause := d.Exclusivity()
	if clause == nil {
		return nil, nil
	}
	if !clause.Start().Before(clause.End()) {
		return nil, ErrInvalidRuleWindow
	}

	category := clause.Category()
	if category == "" {
		category = b.Category()
	}

	competitors := make(map[uuid.UUID]struct{})
	for _, id := range clause.CompetitorBrandIDs() {
		competitors[id] = struct{}{}
	}

	return &ExclusivityRule{
		DealID:             d.ID(),
		BrandID:            d.BrandID(),
		Category:           category,
		CompetitorBrandIDs: competitors,
		Window:             Interval{Start: clause.Start(), End: clause.End()},
		Scope:              clause.Scope(),
	}, nil
}

func (r *ExclusivityRule) ListsCompetitor(brandID uuid.UUID) bool {
	_, ok := r.CompetitorBrandIDs[brandID]
	return ok
}

// DealProfile carries everything pairwise comparison needs about one deal.
// Window is the rule window when a clause exists, otherwise the open-ended
// interval starting at the deal's creation.
type DealProfile struct {
	DealID        uuid.UUID
	BrandID       uuid.UUID
	BrandName     string
	BrandCategory string
	DealTitle     string
	CreatedAt     time.Time
	Window        Interval
	Rule          *ExclusivityRule
}

// NewDealProfile builds the comparison profile for one deal. A malformed
// clause fails with ErrInvalidRuleWindow so the caller can skip just this
// deal; cancelled deals are the caller's responsibility to exclude.
func NewDealProfile(d *deal.Deal, b *brand.Brand) (*DealProfile, error) {
	rule, err := ExtractRule(d, b)
	if err != nil {
		return nil, err
	}

	window := Interval{Start: d.CreatedAt()}
	if rule != nil {
		window = rule.Window
	}

	return &DealProfile{
		DealID:        d.ID(),
		BrandID:       d.BrandID(),
		BrandName:     b.Name(),
		BrandCategory: b.Category(),
		DealTitle:     d.Title(),
		CreatedAt:     d.CreatedAt(),
		Window:        window,
		Rule:          rule,
	}, nil
}

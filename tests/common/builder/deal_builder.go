//go:build unit || e2e

package builder

import (
	"time"

	"dealdesk/internal/domain/brand"
	"dealdesk/internal/domain/conflict"
	domdeal "dealdesk/internal/domain/deal"
	reqdto "dealdesk/internal/handler/dto/request"
	"dealdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type DealBuilder struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	BrandID     uuid.UUID
	Title       string
	Status      domdeal.Status
	AmountCents int64
	Currency    string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	HasClause          bool
	Scope              domdeal.Scope
	Category           string
	CompetitorBrandIDs []uuid.UUID
	StartDate          time.Time
	EndDate            time.Time
}

func NewDealBuilder() *DealBuilder {
	now := time.Now()
	return &DealBuilder{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		BrandID:     uuid.New(),
		Title:       "Spring campaign",
		Status:      domdeal.StatusAgreed,
		AmountCents: 250_000,
		Currency:    "USD",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (d *DealBuilder) With(mutate func(*DealBuilder)) *DealBuilder {
	mutate(d)
	return d
}

func (d *DealBuilder) WithClause(scope domdeal.Scope, category string, start, end time.Time) *DealBuilder {
	d.HasClause = true
	d.Scope = scope
	d.Category = category
	d.StartDate = start
	d.EndDate = end
	return d
}

func (d *DealBuilder) WithCompetitors(ids ...uuid.UUID) *DealBuilder {
	d.CompetitorBrandIDs = ids
	return d
}

// Build methods
func (d *DealBuilder) BuildDomain() (*domdeal.Deal, error) {
	money, err := domdeal.NewMoney(d.AmountCents, d.Currency)
	if err != nil {
		return nil, err
	}
	var clause *domdeal.ExclusivityClause
	if d.HasClause {
		clause, err = domdeal.NewExclusivityClause(d.Category, d.CompetitorBrandIDs, d.StartDate, d.EndDate, d.Scope)
		if err != nil {
			return nil, err
		}
	}
	return domdeal.ReconstructDeal(d.ID, d.UserID, d.BrandID, d.Title, d.Status, money, clause, d.CreatedAt, d.UpdatedAt), nil
}

// BuildProfile pairs the deal with its brand and runs rule extraction, the
// same path the reconciler takes.
func (d *DealBuilder) BuildProfile(b *brand.Brand) (*conflict.DealProfile, error) {
	dom, err := d.BuildDomain()
	if err != nil {
		return nil, err
	}
	return conflict.NewDealProfile(dom, b)
}

func (d *DealBuilder) BuildCreateRequestDTO() reqdto.CreateDealRequest {
	req := reqdto.CreateDealRequest{
		BrandID:     d.BrandID,
		Title:       d.Title,
		AmountCents: d.AmountCents,
		Currency:    d.Currency,
	}
	if d.HasClause {
		req.Exclusivity = &reqdto.ExclusivityClauseRequest{
			Scope:              d.Scope.String(),
			Category:           d.Category,
			CompetitorBrandIDs: d.CompetitorBrandIDs,
			StartDate:          d.StartDate,
			EndDate:            d.EndDate,
		}
	}
	return req
}

func (d *DealBuilder) BuildViewQuery() *queries.DealView {
	view := &queries.DealView{
		ID:          d.ID,
		BrandID:     d.BrandID,
		BrandName:   "Acme Fitness",
		Title:       d.Title,
		Status:      d.Status.String(),
		AmountCents: d.AmountCents,
		Currency:    d.Currency,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	if d.HasClause {
		scope := d.Scope.String()
		category := d.Category
		start := d.StartDate
		end := d.EndDate
		view.ExclusivityScope = &scope
		view.ExclusivityCategory = &category
		view.ExclusivityStartDate = &start
		view.ExclusivityEndDate = &end
	}
	return view
}

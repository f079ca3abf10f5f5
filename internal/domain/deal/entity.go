package deal

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrStatusTransition = errors.New("invalid deal status transition")

type Deal struct {
	id          uuid.UUID
	userID      uuid.UUID
	brandID     uuid.UUID
	title       string
	status      Status
	totalValue  Money
	exclusivity *ExclusivityClause
	createdAt   time.Time
	updatedAt   time.Time
}

func NewDeal(userID, brandID uuid.UUID, title string, totalValue Money, exclusivity *ExclusivityClause) (*Deal, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	return &Deal{
		id:          uuid.New(),
		userID:      userID,
		brandID:     brandID,
		title:       title,
		status:      StatusInbound,
		totalValue:  totalValue,
		exclusivity: exclusivity,
	}, nil
}

func ReconstructDeal(
	id, userID, brandID uuid.UUID,
	title string,
	status Status,
	totalValue Money,
	exclusivity *ExclusivityClause,
	createdAt, updatedAt time.Time,
) *Deal {
	return &Deal{
		id:          id,
		userID:      userID,
		brandID:     brandID,
		title:       title,
		status:      status,
		totalValue:  totalValue,
		exclusivity: exclusivity,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (d *Deal) TransitionTo(next Status) error {
	if !d.status.CanTransitionTo(next) {
		return ErrStatusTransition
	}
	d.status = next
	return nil
}

func (d *Deal) Rename(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	d.title = title
	return nil
}

func (d *Deal) ReplaceExclusivity(clause *ExclusivityClause) {
	d.exclusivity = clause
}

func (d *Deal) Cancel() error {
	return d.TransitionTo(StatusCancelled)
}

func (d *Deal) IsCancelled() bool {
	return d.status == StatusCancelled
}

func (d *Deal) ID() uuid.UUID                   { return d.id }
func (d *Deal) UserID() uuid.UUID               { return d.userID }
func (d *Deal) BrandID() uuid.UUID              { return d.brandID }
func (d *Deal) Title() string                   { return d.title }
func (d *Deal) Status() Status                  { return d.status }
func (d *Deal) TotalValue() Money               { return d.totalValue }
func (d *Deal) Exclusivity() *ExclusivityClause { return d.exclusivity }
func (d *Deal) CreatedAt() time.Time            { return d.createdAt }
func (d *Deal) UpdatedAt() time.Time            { return d.updatedAt }

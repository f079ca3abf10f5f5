package deliverable

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle    = errors.New("deliverable title cannot be empty")
	ErrInvalidStatus = errors.New("invalid deliverable status")
)

type Status string

const (
	StatusPlanned   Status = "PLANNED"
	StatusSubmitted Status = "SUBMITTED"
	StatusPublished Status = "PUBLISHED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPlanned, StatusSubmitted, StatusPublished:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Deliverable is a scheduled piece of content owned by a deal. A nil
// scheduledAt means "not yet on the calendar" and excludes it from
// scheduling-collision checks.
type Deliverable struct {
	id          uuid.UUID
	dealID      uuid.UUID
	title       string
	scheduledAt *time.Time
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

func NewDeliverable(dealID uuid.UUID, title string, scheduledAt *time.Time) (*Deliverable, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	return &Deliverable{
		id:          uuid.New(),
		dealID:      dealID,
		title:       title,
		scheduledAt: scheduledAt,
		status:      StatusPlanned,
	}, nil
}

func ReconstructDeliverable(id, dealID uuid.UUID, title string, scheduledAt *time.Time, status Status, createdAt, updatedAt time.Time) *Deliverable {
	return &Deliverable{
		id:          id,
		dealID:      dealID,
		title:       title,
		scheduledAt: scheduledAt,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (d *Deliverable) Reschedule(at *time.Time) {
	d.scheduledAt = at
}

func (d *Deliverable) SetStatus(s Status) error {
	if !s.IsValid() {
		return ErrInvalidStatus
	}
	d.status = s
	return nil
}

func (d *Deliverable) IsScheduled() bool {
	return d.scheduledAt != nil
}

func (d *Deliverable) ID() uuid.UUID           { return d.id }
func (d *Deliverable) DealID() uuid.UUID       { return d.dealID }
func (d *Deliverable) Title() string           { return d.title }
func (d *Deliverable) ScheduledAt() *time.Time { return d.scheduledAt }
func (d *Deliverable) Status() Status          { return d.status }
func (d *Deliverable) CreatedAt() time.Time    { return d.createdAt }
func (d *Deliverable) UpdatedAt() time.Time    { return d.updatedAt }

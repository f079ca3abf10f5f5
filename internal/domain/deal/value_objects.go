package deal

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus            = errors.New("invalid deal status")
	ErrInvalidScope             = errors.New("invalid exclusivity scope")
	ErrInvalidExclusivityWindow = errors.New("exclusivity start date must be before end date")
	ErrEmptyExclusivityCategory = errors.New("exclusivity category cannot be empty")
	ErrNegativeValue            = errors.New("deal value cannot be negative")
	ErrInvalidCurrency          = errors.New("currency must be a 3-letter ISO code")
	ErrEmptyTitle               = errors.New("deal title cannot be empty")
)

type Money struct {
	cents    int64
	currency string
}

func NewMoney(cents int64, currency string) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeValue
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != 3 {
		return Money{}, ErrInvalidCurrency
	}
	return Money{cents: cents, currency: currency}, nil
}

func (m Money) Cents() int64     { return m.cents }
func (m Money) Currency() string { return m.currency }

// ExclusivityClause is the structured restriction the conflict engine reads.
// The window uses half-open [start,end) semantics.
type ExclusivityClause struct {
	category           string
	competitorBrandIDs map[uuid.UUID]struct{}
	start              time.Time
	end                time.Time
	scope              Scope
}

func NewExclusivityClause(category string, competitorBrandIDs []uuid.UUID, start, end time.Time, scope Scope) (*ExclusivityClause, error) {
	if !scope.IsValid() {
		return nil, ErrInvalidScope
	}
	if !start.Before(end) {
		return nil, ErrInvalidExclusivityWindow
	}
	category = strings.ToLower(strings.TrimSpace(category))
	if scope == ScopeCategory && category == "" {
		return nil, ErrEmptyExclusivityCategory
	}

	competitors := make(map[uuid.UUID]struct{}, len(competitorBrandIDs))
	for _, id := range competitorBrandIDs {
		competitors[id] = struct{}{}
	}

	return &ExclusivityClause{
		category:           category,
		competitorBrandIDs: competitors,
		start:              start,
		end:                end,
		scope:              scope,
	}, nil
}

func (c *ExclusivityClause) Category() string { return c.category }
func (c *ExclusivityClause) Start() time.Time { return c.start }
func (c *ExclusivityClause) End() time.Time   { return c.end }
func (c *ExclusivityClause) Scope() Scope     { return c.scope }

func (c *ExclusivityClause) ListsCompetitor(brandID uuid.UUID) bool {
	_, ok := c.competitorBrandIDs[brandID]
	return ok
}

func (c *ExclusivityClause) CompetitorBrandIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(c.competitorBrandIDs))
	for id := range c.competitorBrandIDs {
		ids = append(ids, id)
	}
	return ids
}

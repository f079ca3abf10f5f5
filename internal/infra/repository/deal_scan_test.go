//go:build unit

package repository

import (
	"testing"
	"time"

	"dealdesk/internal/domain/deal"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRow struct {
	values []any
}

func (r stubRow) Scan(dest ...any) error {
	for i, v := range r.values {
		switch d := dest[i].(type) {
		case *uuid.UUID:
			*d = v.(uuid.UUID)
		case *string:
			*d = v.(string)
		case *int64:
			*d = v.(int64)
		case **string:
			*d, _ = v.(*string)
		case *[]uuid.UUID:
			*d, _ = v.([]uuid.UUID)
		case **time.Time:
			*d, _ = v.(*time.Time)
		case *time.Time:
			*d = v.(time.Time)
		}
	}
	return nil
}

func dealRow(scope *string, start, end *time.Time) stubRow {
	now := time.Now()
	return stubRow{values: []any{
		uuid.New(), uuid.New(), uuid.New(), "Spring campaign", "AGREED",
		int64(100000), "USD",
		scope, (*string)(nil), []uuid.UUID(nil), start, end,
		now, now,
	}}
}

func TestScanDeal(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	t.Run("valid clause survives the round trip", func(t *testing.T) {
		scope := "GLOBAL"
		d, err := scanDeal(dealRow(&scope, &start, &end))
		require.NoError(t, err)
		require.NotNil(t, d.Exclusivity())
		assert.Equal(t, deal.ScopeGlobal, d.Exclusivity().Scope())
	})

	t.Run("unknown scope degrades to a clause-less deal", func(t *testing.T) {
		scope := "REGIONAL"
		d, err := scanDeal(dealRow(&scope, &start, &end))
		require.NoError(t, err)
		assert.Nil(t, d.Exclusivity())
	})

	t.Run("inverted window degrades to a clause-less deal", func(t *testing.T) {
		scope := "GLOBAL"
		d, err := scanDeal(dealRow(&scope, &end, &start))
		require.NoError(t, err)
		assert.Nil(t, d.Exclusivity())
	})
}

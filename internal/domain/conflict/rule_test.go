//go:build unit

package conflict_test

import (
	"testing"

	"dealdesk/internal/domain/brand"
	"dealdesk/internal/domain/conflict"
	"dealdesk/internal/domain/deal"
	"dealdesk/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildBrand(userID uuid.UUID, name, category string) *brand.Brand {
	return builder.NewBrandBuilder().With(func(b *builder.BrandBuilder) {
		b.UserID = userID
		b.Name = name
		b.Category = category
	}).BuildDomain()
}

func TestExtractRule(t *testing.T) {
	userID := uuid.New()
	b := buildBrand(userID, "Acme Fitness", "fitness")

	t.Run("deal without clause yields no rule", func(t *testing.T) {
		d, err := builder.NewDealBuilder().With(func(db *builder.DealBuilder) {
			db.UserID = userID
			db.BrandID = b.ID()
		}).BuildDomain()
		require.NoError(t, err)

		rule, err := conflict.ExtractRule(d, b)
		require.NoError(t, err)
		assert.Nil(t, rule)
	})

	t.Run("category defaults to the brand's category", func(t *testing.T) {
		d, err := builder.NewDealBuilder().With(func(db *builder.DealBuilder) {
			db.UserID = userID
			db.BrandID = b.ID()
		}).WithClause(deal.ScopeGlobal, "", day(0), day(30)).BuildDomain()
		require.NoError(t, err)

		rule, err := conflict.ExtractRule(d, b)
		require.NoError(t, err)
		require.NotNil(t, rule)
		assert.Equal(t, "fitness", rule.Category)
		assert.Equal(t, deal.ScopeGlobal, rule.Scope)
		assert.True(t, rule.Window.Start.Equal(day(0)))
		assert.True(t, rule.Window.End.Equal(day(30)))
	})

	t.Run("explicit category wins over the brand's", func(t *testing.T) {
		d, err := builder.NewDealBuilder().With(func(db *builder.DealBuilder) {
			db.UserID = userID
			db.BrandID = b.ID()
		}).WithClause(deal.ScopeCategory, "supplements", day(0), day(30)).BuildDomain()
		require.NoError(t, err)

		rule, err := conflict.ExtractRule(d, b)
		require.NoError(t, err)
		assert.Equal(t, "supplements", rule.Category)
	})

	t.Run("mismatched brand is rejected", func(t *testing.T) {
		other := buildBrand(userID, "Pulse Athletics", "fitness")
		d, err := builder.NewDealBuilder().With(func(db *builder.DealBuilder) {
			db.UserID = userID
			db.BrandID = b.ID()
		}).BuildDomain()
		require.NoError(t, err)

		_, err = conflict.ExtractRule(d, other)
		assert.ErrorIs(t, err, conflict.ErrBrandMismatch)
	})

	t.Run("competitor listing carries through", func(t *testing.T) {
		competitor := uuid.New()
		d, err := builder.NewDealBuilder().With(func(db *builder.DealBuilder) {
			db.UserID = userID
			db.BrandID = b.ID()
		}).WithClause(deal.ScopeBrand, "", day(0), day(30)).WithCompetitors(competitor).BuildDomain()
		require.NoError(t, err)

		rule, err := conflict.ExtractRule(d, b)
		require.NoError(t, err)
		assert.True(t, rule.ListsCompetitor(competitor))
		assert.False(t, rule.ListsCompetitor(uuid.New()))
	})
}

func TestNewDealProfile(t *testing.T) {
	userID := uuid.New()
	b := buildBrand(userID, "Acme Fitness", "fitness")

	t.Run("window defaults to open-ended from creation", func(t *testing.T) {
		created := day(2)
		d, err := builder.NewDealBuilder().With(func(db *builder.DealBuilder) {
			db.UserID = userID
			db.BrandID = b.ID()
			db.CreatedAt = created
		}).BuildDomain()
		require.NoError(t, err)

		p, err := conflict.NewDealProfile(d, b)
		require.NoError(t, err)
		assert.Nil(t, p.Rule)
		assert.True(t, p.Window.Start.Equal(created))
		assert.True(t, p.Window.IsOpenEnded())
		assert.Equal(t, "fitness", p.BrandCategory)
		assert.Equal(t, "Acme Fitness", p.BrandName)
	})

	t.Run("rule window becomes the profile window", func(t *testing.T) {
		d, err := builder.NewDealBuilder().With(func(db *builder.DealBuilder) {
			db.UserID = userID
			db.BrandID = b.ID()
		}).WithClause(deal.ScopeGlobal, "", day(5), day(25)).BuildDomain()
		require.NoError(t, err)

		p, err := conflict.NewDealProfile(d, b)
		require.NoError(t, err)
		require.NotNil(t, p.Rule)
		assert.True(t, p.Window.Start.Equal(day(5)))
		assert.True(t, p.Window.End.Equal(day(25)))
	})
}

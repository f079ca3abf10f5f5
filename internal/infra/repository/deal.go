package repository

import (
	"context"
	"log/slog"
	"time"

	"dealdesk/internal/domain/deal"
	"dealdesk/internal/infra"
	"dealdesk/internal/infra/db"

	"github.com/google/uuid"
)

const dealColumns = `id, user_id, brand_id, title, status, amount_cents, currency,
	exclusivity_scope, exclusivity_category, exclusivity_competitor_brand_ids,
	exclusivity_start_date, exclusivity_end_date, created_at, updated_at`

type DealRepository struct{}

func NewDealRepository() *DealRepository {
	return &DealRepository{}
}

func (r *DealRepository) Create(ctx context.Context, tx db.DBTX, d *deal.Deal) (uuid.UUID, error) {
	const query = `
		INSERT INTO deals (
			id, user_id, brand_id, title, status, amount_cents, currency,
			exclusivity_scope, exclusivity_category, exclusivity_competitor_brand_ids,
			exclusivity_start_date, exclusivity_end_date
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	scope, category, competitors, start, end := clauseColumns(d.Exclusivity())

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		d.ID(), d.UserID(), d.BrandID(), d.Title(), d.Status().String(),
		d.TotalValue().Cents(), d.TotalValue().Currency(),
		scope, category, competitors, start, end,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create deal", err)
	}
	return id, nil
}

func (r *DealRepository) Update(ctx context.Context, tx db.DBTX, d *deal.Deal) error {
	const query = `
		UPDATE deals
		SET title = $2, status = $3, amount_cents = $4, currency = $5,
			exclusivity_scope = $6, exclusivity_category = $7,
			exclusivity_competitor_brand_ids = $8,
			exclusivity_start_date = $9, exclusivity_end_date = $10,
			updated_at = now()
		WHERE id = $1`

	scope, category, competitors, start, end := clauseColumns(d.Exclusivity())

	tag, err := tx.Exec(ctx, query,
		d.ID(), d.Title(), d.Status().String(),
		d.TotalValue().Cents(), d.TotalValue().Currency(),
		scope, category, competitors, start, end,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update deal", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("deal not found for update", nil, infra.KindNotFound)
	}
	return nil
}

func (r *DealRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*deal.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM deals WHERE id = $1`

	d, err := scanDeal(tx.QueryRow(ctx, query, id))
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("deal not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find deal by id", err)
	}
	return d, nil
}

func (r *DealRepository) ListByUser(ctx context.Context, tx db.DBTX, userID uuid.UUID) ([]*deal.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM deals WHERE user_id = $1 ORDER BY created_at, id`

	rows, err := tx.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list deals by user", err)
	}
	defer rows.Close()

	var deals []*deal.Deal
	for rows.Next() {
		d, serr := scanDeal(rows)
		if serr != nil {
			return nil, infra.WrapRepoErr("failed to scan deal row", serr)
		}
		deals = append(deals, d)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate deal rows", err)
	}
	return deals, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDeal(row rowScanner) (*deal.Deal, error) {
	var (
		id, userID, brandID uuid.UUID
		title, status       string
		amountCents         int64
		currency            string
		scope, category     *string
		competitors         []uuid.UUID
		start, end          *time.Time
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(
		&id, &userID, &brandID, &title, &status, &amountCents, &currency,
		&scope, &category, &competitors, &start, &end, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	money, err := deal.NewMoney(amountCents, currency)
	if err != nil {
		return nil, err
	}
	clause, err := clauseFromColumns(scope, category, competitors, start, end)
	if err != nil {
		// A stored clause the current rules cannot parse degrades to a
		// clause-less deal; one bad row must not abort a portfolio read.
		slog.Warn("dropping malformed exclusivity clause", "deal_id", id, "error", err)
		clause = nil
	}
	return deal.ReconstructDeal(id, userID, brandID, title, deal.Status(status), money, clause, createdAt, updatedAt), nil
}

func clauseColumns(c *deal.ExclusivityClause) (scope, category *string, competitors []uuid.UUID, start, end *time.Time) {
	if c == nil {
		return nil, nil, nil, nil, nil
	}
	s := c.Scope().String()
	cat := c.Category()
	st, en := c.Start(), c.End()
	return &s, &cat, c.CompetitorBrandIDs(), &st, &en
}

func clauseFromColumns(scope, category *string, competitors []uuid.UUID, start, end *time.Time) (*deal.ExclusivityClause, error) {
	if scope == nil || start == nil || end == nil {
		return nil, nil
	}
	cat := ""
	if category != nil {
		cat = *category
	}
	return deal.NewExclusivityClause(cat, competitors, *start, *end, deal.Scope(*scope))
}

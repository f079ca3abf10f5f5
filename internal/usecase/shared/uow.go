package shared

import (
	"context"
	"time"

	"dealdesk/internal/domain/brand"
	"dealdesk/internal/domain/conflict"
	"dealdesk/internal/domain/deal"
	"dealdesk/internal/domain/deliverable"
	"dealdesk/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Deals() DealRepository
	Brands() BrandRepository
	Deliverables() DeliverableRepository
	Conflicts() ConflictRepository
	Users() UserRepository
	DB() db.DBTX
}

type DealRepository interface {
	Create(ctx context.Context, tx db.DBTX, d *deal.Deal) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, d *deal.Deal) error
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*deal.Deal, error)
	ListByUser(ctx context.Context, tx db.DBTX, userID uuid.UUID) ([]*deal.Deal, error)
}

type BrandRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *brand.Brand) (uuid.UUID, error)
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*brand.Brand, error)
	ListByUser(ctx context.Context, tx db.DBTX, userID uuid.UUID) ([]*brand.Brand, error)
}

type DeliverableRepository interface {
	Create(ctx context.Context, tx db.DBTX, d *deliverable.Deliverable) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, d *deliverable.Deliverable) error
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*deliverable.Deliverable, error)
	// ListScheduledByUser returns every scheduled deliverable across the
	// user's deals, the collision-detection input.
	ListScheduledByUser(ctx context.Context, tx db.DBTX, userID uuid.UUID) ([]conflict.ScheduledDeliverable, error)
}

type ConflictRepository interface {
	// AcquirePortfolioLock takes the per-user serialization point. Blocks up
	// to timeout, then fails with KindLockTimeout so the transaction retries.
	AcquirePortfolioLock(ctx context.Context, tx db.DBTX, userID uuid.UUID, timeout time.Duration) error
	ListActiveByUser(ctx context.Context, tx db.DBTX, userID uuid.UUID) ([]*conflict.Conflict, error)
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*conflict.Conflict, error)
	Insert(ctx context.Context, tx db.DBTX, c *conflict.Conflict) (uuid.UUID, error)
	RefreshOverlap(ctx context.Context, tx db.DBTX, id uuid.UUID, overlap conflict.Overlap) error
	AutoResolve(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	// Resolve transitions an ACTIVE row to RESOLVED; returns the affected row
	// count so callers can distinguish already-terminal rows.
	Resolve(ctx context.Context, tx db.DBTX, id uuid.UUID) (int64, error)
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}

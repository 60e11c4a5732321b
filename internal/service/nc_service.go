package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arc-self/qhse-service/internal/outbox"
	db "github.com/arc-self/qhse-service/internal/repository/db"
)

type NCService interface {
	Create(ctx context.Context, p CreateNCInput) (db.Nonconformity, error)
	Close(ctx context.Context, id int64) (db.Nonconformity, error)
	List(ctx context.Context, f ListNCsFilter) ([]db.Nonconformity, error)
}

type CreateNCInput struct {
	SupplierID  int64
	Severity    string
	Description string
}

// ListNCsFilter narrows the paginated NC list. Empty Status / Severity mean
// no filtering on that column.
type ListNCsFilter struct {
	Status   string
	Severity string
	Limit    int
	Offset   int
}

var validSeverities = map[string]struct{}{"low": {}, "medium": {}, "high": {}}

type ncService struct {
	pool    *pgxpool.Pool
	querier db.Querier
}

func NewNCService(pool *pgxpool.Pool, q db.Querier) NCService {
	return &ncService{pool: pool, querier: q}
}

// Create opens a non-conformity and enqueues NC_CREATED in the same
// transaction. A missing supplier rolls the whole transaction back, so no
// outbox row is produced.
func (s *ncService) Create(ctx context.Context, p CreateNCInput) (db.Nonconformity, error) {
	if _, ok := validSeverities[p.Severity]; !ok {
		return db.Nonconformity{}, fmt.Errorf("%w: severity must be low, medium, or high", ErrInvalidInput)
	}
	if p.Description == "" {
		return db.Nonconformity{}, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return db.Nonconformity{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)
	qtx := db.New(tx)

	if _, err := qtx.GetSupplier(ctx, p.SupplierID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return db.Nonconformity{}, fmt.Errorf("%w: supplier %d does not exist", ErrInvalidInput, p.SupplierID)
		}
		return db.Nonconformity{}, fmt.Errorf("get supplier: %w", err)
	}

	nc, err := qtx.CreateNC(ctx, db.CreateNCParams{
		SupplierID:  p.SupplierID,
		Severity:    p.Severity,
		Description: p.Description,
	})
	if err != nil {
		return db.Nonconformity{}, fmt.Errorf("create NC: %w", err)
	}

	if _, err := outbox.Enqueue(ctx, qtx, outbox.EventNCCreated, map[string]interface{}{
		"nc_id":       nc.ID,
		"supplier_id": nc.SupplierID,
		"severity":    nc.Severity,
	}); err != nil {
		return db.Nonconformity{}, err
	}

	return nc, tx.Commit(ctx)
}

// Close transitions an NC from OPEN to CLOSED and enqueues NC_CLOSED in the
// same transaction. Only OPEN→CLOSED is a legal transition.
func (s *ncService) Close(ctx context.Context, id int64) (db.Nonconformity, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return db.Nonconformity{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)
	qtx := db.New(tx)

	nc, err := qtx.GetNC(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return db.Nonconformity{}, fmt.Errorf("%w: NC %d", ErrNotFound, id)
		}
		return db.Nonconformity{}, fmt.Errorf("get NC: %w", err)
	}
	if nc.Status != "OPEN" {
		return db.Nonconformity{}, fmt.Errorf("%w: NC %d is already %s", ErrInvalidInput, id, nc.Status)
	}

	nc, err = qtx.CloseNC(ctx, id)
	if err != nil {
		return db.Nonconformity{}, fmt.Errorf("close NC: %w", err)
	}

	if _, err := outbox.Enqueue(ctx, qtx, outbox.EventNCClosed, map[string]interface{}{
		"nc_id": nc.ID,
	}); err != nil {
		return db.Nonconformity{}, err
	}

	return nc, tx.Commit(ctx)
}

func (s *ncService) List(ctx context.Context, f ListNCsFilter) ([]db.Nonconformity, error) {
	pageLimit, pageOffset, err := validatePage(f.Limit, f.Offset)
	if err != nil {
		return nil, err
	}
	if f.Status != "" && f.Status != "OPEN" && f.Status != "CLOSED" {
		return nil, fmt.Errorf("%w: status must be OPEN or CLOSED", ErrInvalidInput)
	}
	if f.Severity != "" {
		if _, ok := validSeverities[f.Severity]; !ok {
			return nil, fmt.Errorf("%w: severity must be low, medium, or high", ErrInvalidInput)
		}
	}

	return s.querier.ListNCs(ctx, db.ListNCsParams{
		Status:     pgtype.Text{String: f.Status, Valid: f.Status != ""},
		Severity:   pgtype.Text{String: f.Severity, Valid: f.Severity != ""},
		PageLimit:  pageLimit,
		PageOffset: pageOffset,
	})
}

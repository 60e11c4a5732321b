package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arc-self/qhse-service/internal/outbox"
	db "github.com/arc-self/qhse-service/internal/repository/db"
)

type SupplierService interface {
	Create(ctx context.Context, p CreateSupplierInput) (db.Supplier, error)
	List(ctx context.Context, limit, offset int) ([]db.Supplier, error)
	GetDetail(ctx context.Context, id int64) (SupplierDetail, error)
	UpdateCertification(ctx context.Context, id int64, expiry *string) (db.Supplier, error)
}

type CreateSupplierInput struct {
	Name                string
	CertificationExpiry *string
}

// SupplierDetail is the supplier read model enriched with NC aggregates and
// the at-risk flag (expired certification or any OPEN high-severity NC).
type SupplierDetail struct {
	ID                  int64   `json:"id"`
	Name                string  `json:"name"`
	CertificationExpiry *string `json:"certification_expiry"`
	NCTotal             int64   `json:"nc_total"`
	NCOpen              int64   `json:"nc_open"`
	NCOpenHigh          int64   `json:"nc_open_high"`
	IsAtRisk            bool    `json:"is_at_risk"`
}

type supplierService struct {
	pool    *pgxpool.Pool
	querier db.Querier
}

func NewSupplierService(pool *pgxpool.Pool, q db.Querier) SupplierService {
	return &supplierService{pool: pool, querier: q}
}

func (s *supplierService) Create(ctx context.Context, p CreateSupplierInput) (db.Supplier, error) {
	if p.Name == "" {
		return db.Supplier{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	expiry, err := parseExpiry(p.CertificationExpiry)
	if err != nil {
		return db.Supplier{}, err
	}

	supplier, err := s.querier.CreateSupplier(ctx, db.CreateSupplierParams{
		Name:                p.Name,
		CertificationExpiry: expiry,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return db.Supplier{}, fmt.Errorf("%w: supplier name already exists", ErrConflict)
		}
		return db.Supplier{}, fmt.Errorf("create supplier: %w", err)
	}
	return supplier, nil
}

func (s *supplierService) List(ctx context.Context, limit, offset int) ([]db.Supplier, error) {
	pageLimit, pageOffset, err := validatePage(limit, offset)
	if err != nil {
		return nil, err
	}
	return s.querier.ListSuppliers(ctx, db.ListSuppliersParams{
		PageLimit:  pageLimit,
		PageOffset: pageOffset,
	})
}

func (s *supplierService) GetDetail(ctx context.Context, id int64) (SupplierDetail, error) {
	supplier, err := s.querier.GetSupplier(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return SupplierDetail{}, fmt.Errorf("%w: supplier %d", ErrNotFound, id)
		}
		return SupplierDetail{}, fmt.Errorf("get supplier: %w", err)
	}

	stats, err := s.querier.CountSupplierNCStats(ctx, id)
	if err != nil {
		return SupplierDetail{}, fmt.Errorf("count supplier NCs: %w", err)
	}

	detail := SupplierDetail{
		ID:         supplier.ID,
		Name:       supplier.Name,
		NCTotal:    stats.NcTotal,
		NCOpen:     stats.NcOpen,
		NCOpenHigh: stats.NcOpenHigh,
	}
	certExpired := false
	if supplier.CertificationExpiry.Valid {
		iso := supplier.CertificationExpiry.Time.Format("2006-01-02")
		detail.CertificationExpiry = &iso
		certExpired = supplier.CertificationExpiry.Time.Before(today().Time)
	}
	detail.IsAtRisk = certExpired || stats.NcOpenHigh > 0
	return detail, nil
}

func (s *supplierService) UpdateCertification(ctx context.Context, id int64, expiry *string) (db.Supplier, error) {
	parsed, err := parseExpiry(expiry)
	if err != nil {
		return db.Supplier{}, err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return db.Supplier{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)
	qtx := db.New(tx)

	supplier, err := qtx.UpdateSupplierCertification(ctx, db.UpdateSupplierCertificationParams{
		ID:                  id,
		CertificationExpiry: parsed,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return db.Supplier{}, fmt.Errorf("%w: supplier %d", ErrNotFound, id)
		}
		return db.Supplier{}, fmt.Errorf("update certification: %w", err)
	}

	payload := map[string]interface{}{
		"supplier_id":          supplier.ID,
		"certification_expiry": nil,
	}
	if supplier.CertificationExpiry.Valid {
		payload["certification_expiry"] = supplier.CertificationExpiry.Time.Format("2006-01-02")
	}
	if _, err := outbox.Enqueue(ctx, qtx, outbox.EventSupplierCertUpdated, payload); err != nil {
		return db.Supplier{}, err
	}

	return supplier, tx.Commit(ctx)
}

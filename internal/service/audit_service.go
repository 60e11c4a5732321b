package service

import (
	"context"

	db "github.com/arc-self/qhse-service/internal/repository/db"
)

type AuditService interface {
	List(ctx context.Context, limit, offset int) ([]db.AuditLog, error)
}

type auditService struct {
	querier db.Querier
}

func NewAuditService(q db.Querier) AuditService {
	return &auditService{querier: q}
}

// List returns audit rows latest-first.
func (s *auditService) List(ctx context.Context, limit, offset int) ([]db.AuditLog, error) {
	pageLimit, pageOffset, err := validatePage(limit, offset)
	if err != nil {
		return nil, err
	}
	return s.querier.ListAuditLog(ctx, db.ListAuditLogParams{
		PageLimit:  pageLimit,
		PageOffset: pageOffset,
	})
}

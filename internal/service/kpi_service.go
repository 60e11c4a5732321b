package service

import (
	"context"
	"fmt"

	db "github.com/arc-self/qhse-service/internal/repository/db"
)

// KPIReport aggregates the dashboard counters in one read.
type KPIReport struct {
	NCOpen           int64 `json:"nc_open"`
	NCOpenHigh       int64 `json:"nc_open_high"`
	NCClosed         int64 `json:"nc_closed"`
	OutboxPending    int64 `json:"outbox_pending"`
	OutboxFailed     int64 `json:"outbox_failed"`
	SuppliersAtRisk  int64 `json:"suppliers_at_risk"`
	AuditEventsTotal int64 `json:"audit_events_total"`
}

type KPIService interface {
	Report(ctx context.Context) (KPIReport, error)
}

type kpiService struct {
	querier db.Querier
}

func NewKPIService(q db.Querier) KPIService {
	return &kpiService{querier: q}
}

func (s *kpiService) Report(ctx context.Context) (KPIReport, error) {
	counts, err := s.querier.GetKPICounts(ctx)
	if err != nil {
		return KPIReport{}, fmt.Errorf("kpi counts: %w", err)
	}
	atRisk, err := s.querier.CountSuppliersAtRisk(ctx, today())
	if err != nil {
		return KPIReport{}, fmt.Errorf("suppliers at risk: %w", err)
	}
	return KPIReport{
		NCOpen:           counts.NcOpen,
		NCOpenHigh:       counts.NcOpenHigh,
		NCClosed:         counts.NcClosed,
		OutboxPending:    counts.OutboxPending,
		OutboxFailed:     counts.OutboxFailed,
		SuppliersAtRisk:  atRisk,
		AuditEventsTotal: counts.AuditEventsTotal,
	}, nil
}

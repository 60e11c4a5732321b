package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	db "github.com/arc-self/qhse-service/internal/repository/db"
	"github.com/arc-self/qhse-service/internal/repository/mock"
	"github.com/arc-self/qhse-service/internal/service"
)

func pgDate(s string) pgtype.Date {
	t, _ := time.Parse("2006-01-02", s)
	return pgtype.Date{Time: t, Valid: true}
}

// ── SupplierService ───────────────────────────────────────────────────────

func TestCreateSupplier_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := service.NewSupplierService(nil, mock.NewMockQuerier(ctrl))

	_, err := svc.Create(context.Background(), service.CreateSupplierInput{Name: ""})
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	bad := "31-12-2030"
	_, err = svc.Create(context.Background(), service.CreateSupplierInput{
		Name:                "ACME",
		CertificationExpiry: &bad,
	})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestCreateSupplier_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockQ := mock.NewMockQuerier(ctrl)
	svc := service.NewSupplierService(nil, mockQ)

	expiry := "2030-12-31"
	mockQ.EXPECT().CreateSupplier(gomock.Any(), db.CreateSupplierParams{
		Name:                "ACME",
		CertificationExpiry: pgDate("2030-12-31"),
	}).Return(db.Supplier{ID: 1, Name: "ACME", CertificationExpiry: pgDate("2030-12-31")}, nil)

	supplier, err := svc.Create(context.Background(), service.CreateSupplierInput{
		Name:                "ACME",
		CertificationExpiry: &expiry,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), supplier.ID)
}

func TestGetSupplierDetail_AtRisk(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockQ := mock.NewMockQuerier(ctrl)
	svc := service.NewSupplierService(nil, mockQ)

	// Expired certification makes the supplier at risk even with no open
	// high-severity NCs.
	mockQ.EXPECT().GetSupplier(gomock.Any(), int64(1)).Return(db.Supplier{
		ID: 1, Name: "ACME", CertificationExpiry: pgDate("2020-01-01"),
	}, nil)
	mockQ.EXPECT().CountSupplierNCStats(gomock.Any(), int64(1)).Return(db.CountSupplierNCStatsRow{
		NcTotal: 2, NcOpen: 1, NcOpenHigh: 0,
	}, nil)

	detail, err := svc.GetDetail(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, detail.IsAtRisk)
	require.NotNil(t, detail.CertificationExpiry)
	assert.Equal(t, "2020-01-01", *detail.CertificationExpiry)
	assert.Equal(t, int64(2), detail.NCTotal)
}

func TestGetSupplierDetail_HighNCMakesAtRisk(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockQ := mock.NewMockQuerier(ctrl)
	svc := service.NewSupplierService(nil, mockQ)

	mockQ.EXPECT().GetSupplier(gomock.Any(), int64(2)).Return(db.Supplier{ID: 2, Name: "Globex"}, nil)
	mockQ.EXPECT().CountSupplierNCStats(gomock.Any(), int64(2)).Return(db.CountSupplierNCStatsRow{
		NcTotal: 1, NcOpen: 1, NcOpenHigh: 1,
	}, nil)

	detail, err := svc.GetDetail(context.Background(), 2)
	require.NoError(t, err)
	assert.True(t, detail.IsAtRisk)
	assert.Nil(t, detail.CertificationExpiry)
}

func TestGetSupplierDetail_NotAtRisk(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockQ := mock.NewMockQuerier(ctrl)
	svc := service.NewSupplierService(nil, mockQ)

	mockQ.EXPECT().GetSupplier(gomock.Any(), int64(3)).Return(db.Supplier{
		ID: 3, Name: "Initech", CertificationExpiry: pgDate("2099-01-01"),
	}, nil)
	mockQ.EXPECT().CountSupplierNCStats(gomock.Any(), int64(3)).Return(db.CountSupplierNCStatsRow{}, nil)

	detail, err := svc.GetDetail(context.Background(), 3)
	require.NoError(t, err)
	assert.False(t, detail.IsAtRisk)
}

func TestGetSupplierDetail_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockQ := mock.NewMockQuerier(ctrl)
	svc := service.NewSupplierService(nil, mockQ)

	mockQ.EXPECT().GetSupplier(gomock.Any(), int64(999)).Return(db.Supplier{}, pgx.ErrNoRows)

	_, err := svc.GetDetail(context.Background(), 999)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestListSuppliers_PaginationBounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := service.NewSupplierService(nil, mock.NewMockQuerier(ctrl))

	_, err := svc.List(context.Background(), 101, 0)
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	_, err = svc.List(context.Background(), 10, -1)
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestListSuppliers_DefaultLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockQ := mock.NewMockQuerier(ctrl)
	svc := service.NewSupplierService(nil, mockQ)

	mockQ.EXPECT().ListSuppliers(gomock.Any(), db.ListSuppliersParams{
		PageLimit: 20, PageOffset: 0,
	}).Return([]db.Supplier{}, nil)

	_, err := svc.List(context.Background(), 0, 0)
	require.NoError(t, err)
}

// ── NCService ─────────────────────────────────────────────────────────────

func TestCreateNC_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := service.NewNCService(nil, mock.NewMockQuerier(ctrl))

	_, err := svc.Create(context.Background(), service.CreateNCInput{
		SupplierID: 1, Severity: "catastrophic", Description: "x",
	})
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	_, err = svc.Create(context.Background(), service.CreateNCInput{
		SupplierID: 1, Severity: "low", Description: "",
	})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestListNCs_FilterValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := service.NewNCService(nil, mock.NewMockQuerier(ctrl))

	_, err := svc.List(context.Background(), service.ListNCsFilter{Status: "HALF-OPEN"})
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	_, err = svc.List(context.Background(), service.ListNCsFilter{Severity: "extreme"})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestListNCs_FiltersForwarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockQ := mock.NewMockQuerier(ctrl)
	svc := service.NewNCService(nil, mockQ)

	mockQ.EXPECT().ListNCs(gomock.Any(), db.ListNCsParams{
		Status:     pgtype.Text{String: "OPEN", Valid: true},
		Severity:   pgtype.Text{String: "high", Valid: true},
		PageLimit:  50,
		PageOffset: 10,
	}).Return([]db.Nonconformity{{ID: 1}}, nil)

	ncs, err := svc.List(context.Background(), service.ListNCsFilter{
		Status: "OPEN", Severity: "high", Limit: 50, Offset: 10,
	})
	require.NoError(t, err)
	assert.Len(t, ncs, 1)
}

func TestListNCs_NoFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockQ := mock.NewMockQuerier(ctrl)
	svc := service.NewNCService(nil, mockQ)

	mockQ.EXPECT().ListNCs(gomock.Any(), db.ListNCsParams{
		Status:     pgtype.Text{},
		Severity:   pgtype.Text{},
		PageLimit:  20,
		PageOffset: 0,
	}).Return(nil, nil)

	_, err := svc.List(context.Background(), service.ListNCsFilter{})
	require.NoError(t, err)
}

// ── KPIService ────────────────────────────────────────────────────────────

func TestKPIReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockQ := mock.NewMockQuerier(ctrl)
	svc := service.NewKPIService(mockQ)

	mockQ.EXPECT().GetKPICounts(gomock.Any()).Return(db.GetKPICountsRow{
		NcOpen: 4, NcOpenHigh: 1, NcClosed: 2,
		OutboxPending: 3, OutboxFailed: 1, AuditEventsTotal: 6,
	}, nil)
	mockQ.EXPECT().CountSuppliersAtRisk(gomock.Any(), gomock.Any()).Return(int64(2), nil)

	report, err := svc.Report(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), report.NCOpen)
	assert.Equal(t, int64(1), report.NCOpenHigh)
	assert.Equal(t, int64(2), report.NCClosed)
	assert.Equal(t, int64(3), report.OutboxPending)
	assert.Equal(t, int64(1), report.OutboxFailed)
	assert.Equal(t, int64(2), report.SuppliersAtRisk)
	assert.Equal(t, int64(6), report.AuditEventsTotal)
}

// ── AuditService ──────────────────────────────────────────────────────────

func TestAuditList_Forwarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockQ := mock.NewMockQuerier(ctrl)
	svc := service.NewAuditService(mockQ)

	mockQ.EXPECT().ListAuditLog(gomock.Any(), db.ListAuditLogParams{
		PageLimit: 20, PageOffset: 0,
	}).Return([]db.AuditLog{{ID: 2}, {ID: 1}}, nil)

	entries, err := svc.List(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestAuditList_PaginationBounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := service.NewAuditService(mock.NewMockQuerier(ctrl))

	_, err := svc.List(context.Background(), 0, -5)
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

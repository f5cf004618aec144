package service

import (
	"context"
	"fmt"
	"time"

	"depo-backend/internal/model"
	"depo-backend/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DashboardService interface {
	GetDashboard(ctx context.Context) (*model.DashboardResponse, error)
}

// dashboardService queries gorm directly; the counters cut across every
// entity and a repository per widget would add nothing.
type dashboardService struct {
	db      *gorm.DB
	logRepo repository.LogRepository
}

func NewDashboardService(db *gorm.DB, logRepo repository.LogRepository) DashboardService {
	return &dashboardService{db: db, logRepo: logRepo}
}

func (s *dashboardService) GetDashboard(ctx context.Context) (*model.DashboardResponse, error) {
	db := s.db.WithContext(ctx)
	res := &model.DashboardResponse{
		LowStockItems:      []model.LowStockItem{},
		MonthPurchaseTotal: decimal.Zero,
		MonthSalesTotal:    decimal.Zero,
	}

	counts := []struct {
		dest  *int64
		model interface{}
		query func(*gorm.DB) *gorm.DB
	}{
		{&res.CariCount, &model.Cari{}, nil},
		{&res.MalzemeCount, &model.Malzeme{}, nil},
		{&res.KategoriCount, &model.Kategori{}, nil},
		{&res.PersonelCount, &model.Personel{}, nil},
		{&res.ActiveZimmetCount, &model.Zimmet{}, func(q *gorm.DB) *gorm.DB {
			return q.Where("status = ?", model.ZimmetActive)
		}},
		{&res.PendingTalepCount, &model.Talep{}, func(q *gorm.DB) *gorm.DB {
			return q.Where("status = ?", model.TalepPending)
		}},
	}
	for _, c := range counts {
		q := db.Model(c.model)
		if c.query != nil {
			q = c.query(q)
		}
		if err := q.Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("failed to count dashboard entities: %w", err)
		}
	}

	if err := db.Model(&model.Malzeme{}).
		Select("id as malzeme_id, code, name, stock_quantity, min_stock_level").
		Where("stock_quantity <= min_stock_level").
		Order("stock_quantity ASC").
		Limit(20).
		Scan(&res.LowStockItems).Error; err != nil {
		return nil, fmt.Errorf("failed to load low stock items: %w", err)
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	purchaseTotal, err := s.monthTotal(db, model.FaturaTypeAlis, monthStart)
	if err != nil {
		return nil, err
	}
	res.MonthPurchaseTotal = purchaseTotal

	salesTotal, err := s.monthTotal(db, model.FaturaTypeSatis, monthStart)
	if err != nil {
		return nil, err
	}
	res.MonthSalesTotal = salesTotal

	recent, err := s.logRepo.Recent(ctx, 5)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent logs: %w", err)
	}
	res.RecentLogs = recent

	return res, nil
}

func (s *dashboardService) monthTotal(db *gorm.DB, faturaType string, since time.Time) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := db.Model(&model.Fatura{}).
		Select("SUM(grand_total)").
		Where("type = ? AND date >= ?", faturaType, since).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum %s invoices: %w", faturaType, err)
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

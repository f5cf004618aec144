package model

import "github.com/shopspring/decimal"

// LowStockItem is a material at or below its minimum stock level
type LowStockItem struct {
	MalzemeID     string `json:"malzeme_id"`
	Code          string `json:"code"`
	Name          string `json:"name"`
	StockQuantity int    `json:"stock_quantity"`
	MinStockLevel int    `json:"min_stock_level"`
}

// DashboardResponse aggregates the counters and summaries shown on the landing page
type DashboardResponse struct {
	CariCount          int64           `json:"cari_count"`
	MalzemeCount       int64           `json:"malzeme_count"`
	KategoriCount      int64           `json:"kategori_count"`
	PersonelCount      int64           `json:"personel_count"`
	ActiveZimmetCount  int64           `json:"active_zimmet_count"`
	PendingTalepCount  int64           `json:"pending_talep_count"`
	LowStockItems      []LowStockItem  `json:"low_stock_items"`
	MonthPurchaseTotal decimal.Decimal `json:"month_purchase_total"` // ALIS grand totals, current month
	MonthSalesTotal    decimal.Decimal `json:"month_sales_total"`    // SATIS grand totals, current month
	RecentLogs         []SystemLog     `json:"recent_logs"`
}

package service

import (
	"context"
	"fmt"
	"time"

	"depo-backend/internal/model"
	"depo-backend/internal/repository"
	"depo-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- DTOs ---

type FaturaItemPayload struct {
	MalzemeID   string          `json:"malzeme_id" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price" binding:"required"`
	DiscountPct decimal.Decimal `json:"discount_pct"`
	VATPct      decimal.Decimal `json:"vat_pct"`
}

type CreateFaturaRequest struct {
	InvoiceNo string              `json:"invoice_no"` // generated if empty
	CariID    string              `json:"cari_id" binding:"required"`
	Type      string              `json:"type" binding:"required,oneof=ALIS SATIS"`
	Date      time.Time           `json:"date" binding:"required"`
	Note      string              `json:"note"`
	Items     []FaturaItemPayload `json:"items" binding:"required,min=1,dive"`
}

type UpdateFaturaRequest struct {
	CariID string              `json:"cari_id" binding:"required"`
	Type   string              `json:"type" binding:"required,oneof=ALIS SATIS"`
	Date   time.Time           `json:"date" binding:"required"`
	Note   string              `json:"note"`
	Items  []FaturaItemPayload `json:"items" binding:"required,min=1,dive"`
}

type FaturaItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	MalzemeID   uuid.UUID       `json:"malzeme_id"`
	MalzemeName string          `json:"malzeme_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	DiscountPct decimal.Decimal `json:"discount_pct"`
	VATPct      decimal.Decimal `json:"vat_pct"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

type FaturaResponse struct {
	ID            uuid.UUID            `json:"id"`
	InvoiceNo     string               `json:"invoice_no"`
	CariID        uuid.UUID            `json:"cari_id"`
	CariName      string               `json:"cari_name"`
	Type          string               `json:"type"`
	Date          time.Time            `json:"date"`
	Subtotal      decimal.Decimal      `json:"subtotal"`
	TotalDiscount decimal.Decimal      `json:"total_discount"`
	TotalVAT      decimal.Decimal      `json:"total_vat"`
	GrandTotal    decimal.Decimal      `json:"grand_total"`
	Note          string               `json:"note"`
	Items         []FaturaItemResponse `json:"items"`
	CreatedAt     time.Time            `json:"created_at"`
}

// --- Interface ---

type FaturaService interface {
	CreateFatura(ctx context.Context, actor Actor, req CreateFaturaRequest) (*FaturaResponse, error)
	GetFatura(ctx context.Context, id string) (*FaturaResponse, error)
	ListFaturalar(ctx context.Context, faturaType, cariID string, page, limit int) ([]FaturaResponse, int64, error)
	UpdateFatura(ctx context.Context, actor Actor, id string, req UpdateFaturaRequest) (*FaturaResponse, error)
	DeleteFatura(ctx context.Context, actor Actor, id string) error
}

type faturaService struct {
	faturaRepo  repository.FaturaRepository
	cariRepo    repository.CariRepository
	malzemeRepo repository.MalzemeRepository
	logRepo     repository.LogRepository
	txManager   repository.TransactionManager
}

func NewFaturaService(
	faturaRepo repository.FaturaRepository,
	cariRepo repository.CariRepository,
	malzemeRepo repository.MalzemeRepository,
	logRepo repository.LogRepository,
	txManager repository.TransactionManager,
) FaturaService {
	return &faturaService{
		faturaRepo:  faturaRepo,
		cariRepo:    cariRepo,
		malzemeRepo: malzemeRepo,
		logRepo:     logRepo,
		txManager:   txManager,
	}
}

// --- Aggregation ---

var hundred = decimal.NewFromInt(100)

// faturaTotals holds the invoice-level sums derived from the line items
type faturaTotals struct {
	Subtotal      decimal.Decimal
	TotalDiscount decimal.Decimal
	TotalVAT      decimal.Decimal
	GrandTotal    decimal.Decimal
}

// computeLine derives a single line's discount, VAT, and total:
//
//	subtotal = qty * price
//	discount = subtotal * discountPct/100
//	vatBase  = subtotal - discount
//	vat      = vatBase * vatPct/100
//	total    = vatBase + vat
func computeLine(item FaturaItemPayload) (subtotal, discount, vat, total decimal.Decimal) {
	subtotal = item.Quantity.Mul(item.UnitPrice)
	discount = subtotal.Mul(item.DiscountPct.Div(hundred))
	vatBase := subtotal.Sub(discount)
	vat = vatBase.Mul(item.VATPct.Div(hundred))
	total = vatBase.Add(vat)
	return subtotal, discount, vat, total
}

// computeFaturaTotals aggregates the line items into invoice-level sums
func computeFaturaTotals(items []FaturaItemPayload) faturaTotals {
	totals := faturaTotals{
		Subtotal:      decimal.Zero,
		TotalDiscount: decimal.Zero,
		TotalVAT:      decimal.Zero,
	}
	for _, item := range items {
		subtotal, discount, vat, _ := computeLine(item)
		totals.Subtotal = totals.Subtotal.Add(subtotal)
		totals.TotalDiscount = totals.TotalDiscount.Add(discount)
		totals.TotalVAT = totals.TotalVAT.Add(vat)
	}
	totals.GrandTotal = totals.Subtotal.Sub(totals.TotalDiscount).Add(totals.TotalVAT)
	return totals
}

func validateItems(items []FaturaItemPayload) error {
	for i, item := range items {
		if item.Quantity.LessThanOrEqual(decimal.Zero) {
			return apperror.New("items[%d]: quantity must be positive", i)
		}
		if item.UnitPrice.IsNegative() {
			return apperror.New("items[%d]: unit price cannot be negative", i)
		}
		if item.DiscountPct.IsNegative() || item.DiscountPct.GreaterThan(hundred) {
			return apperror.New("items[%d]: discount percentage must be between 0 and 100", i)
		}
		if item.VATPct.IsNegative() {
			return apperror.New("items[%d]: VAT percentage cannot be negative", i)
		}
	}
	return nil
}

// --- Implementation ---

func toFaturaResponse(f *model.Fatura) *FaturaResponse {
	res := &FaturaResponse{
		ID:            f.ID,
		InvoiceNo:     f.InvoiceNo,
		CariID:        f.CariID,
		Type:          f.Type,
		Date:          f.Date,
		Subtotal:      f.Subtotal,
		TotalDiscount: f.TotalDiscount,
		TotalVAT:      f.TotalVAT,
		GrandTotal:    f.GrandTotal,
		Note:          f.Note,
		Items:         make([]FaturaItemResponse, 0, len(f.Items)),
		CreatedAt:     f.CreatedAt,
	}
	if f.Cari != nil {
		res.CariName = f.Cari.Name
	}
	for _, item := range f.Items {
		itemRes := FaturaItemResponse{
			ID:          item.ID,
			MalzemeID:   item.MalzemeID,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			DiscountPct: item.DiscountPct,
			VATPct:      item.VATPct,
			LineTotal:   item.LineTotal,
		}
		if item.Malzeme != nil {
			itemRes.MalzemeName = item.Malzeme.Name
		}
		res.Items = append(res.Items, itemRes)
	}
	return res
}

// buildItems resolves material references and computes per-line totals
func (s *faturaService) buildItems(ctx context.Context, payloads []FaturaItemPayload) ([]model.FaturaItem, error) {
	items := make([]model.FaturaItem, 0, len(payloads))
	for i, payload := range payloads {
		malzemeID, err := uuid.Parse(payload.MalzemeID)
		if err != nil {
			return nil, apperror.New("items[%d]: invalid malzeme id", i)
		}
		if _, err := s.malzemeRepo.GetByID(ctx, malzemeID); err != nil {
			return nil, apperror.New("items[%d]: malzeme not found", i)
		}

		_, _, _, lineTotal := computeLine(payload)
		items = append(items, model.FaturaItem{
			MalzemeID:   malzemeID,
			Quantity:    payload.Quantity,
			UnitPrice:   payload.UnitPrice,
			DiscountPct: payload.DiscountPct,
			VATPct:      payload.VATPct,
			LineTotal:   lineTotal,
		})
	}
	return items, nil
}

func (s *faturaService) generateInvoiceNo(ctx context.Context) (string, error) {
	today := time.Now().Format("20060102")
	prefix := "FTR-" + today + "-"

	count, err := s.faturaRepo.CountByInvoiceNoPrefix(ctx, prefix)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%05d", prefix, count+1), nil
}

func (s *faturaService) CreateFatura(ctx context.Context, actor Actor, req CreateFaturaRequest) (*FaturaResponse, error) {
	cariID, err := uuid.Parse(req.CariID)
	if err != nil {
		return nil, apperror.New("invalid cari id")
	}
	cari, err := s.cariRepo.GetByID(ctx, cariID)
	if err != nil {
		return nil, apperror.New("cari not found")
	}

	if err := validateItems(req.Items); err != nil {
		return nil, err
	}

	items, err := s.buildItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}
	totals := computeFaturaTotals(req.Items)

	fatura := &model.Fatura{
		InvoiceNo:     req.InvoiceNo,
		CariID:        cari.ID,
		Type:          req.Type,
		Date:          req.Date,
		Subtotal:      totals.Subtotal,
		TotalDiscount: totals.TotalDiscount,
		TotalVAT:      totals.TotalVAT,
		GrandTotal:    totals.GrandTotal,
		Note:          req.Note,
		Items:         items,
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if fatura.InvoiceNo == "" {
			generated, genErr := s.generateInvoiceNo(txCtx)
			if genErr != nil {
				return fmt.Errorf("failed to generate invoice number: %w", genErr)
			}
			fatura.InvoiceNo = generated
		}
		if err := s.faturaRepo.Create(txCtx, fatura); err != nil {
			return fmt.Errorf("failed to create fatura: %w", err)
		}
		details := fmt.Sprintf("invoice_no: %s, grand_total: %s", fatura.InvoiceNo, fatura.GrandTotal.StringFixed(2))
		return s.logRepo.Create(txCtx, auditEntry(actor, model.LogActionCreate, "Fatura", fatura.ID.String(), details))
	})
	if err != nil {
		return nil, err
	}

	fatura.Cari = cari
	return toFaturaResponse(fatura), nil
}

func (s *faturaService) GetFatura(ctx context.Context, id string) (*FaturaResponse, error) {
	faturaID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.New("invalid fatura id")
	}
	fatura, err := s.faturaRepo.GetByID(ctx, faturaID)
	if err != nil {
		return nil, apperror.NotFound("fatura not found")
	}
	return toFaturaResponse(fatura), nil
}

func (s *faturaService) ListFaturalar(ctx context.Context, faturaType, cariID string, page, limit int) ([]FaturaResponse, int64, error) {
	if faturaType != "" && faturaType != model.FaturaTypeAlis && faturaType != model.FaturaTypeSatis {
		return nil, 0, apperror.New("type must be one of: ALIS, SATIS")
	}

	faturalar, total, err := s.faturaRepo.List(ctx, faturaType, cariID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	res := make([]FaturaResponse, 0, len(faturalar))
	for i := range faturalar {
		res = append(res, *toFaturaResponse(&faturalar[i]))
	}
	return res, total, nil
}

func (s *faturaService) UpdateFatura(ctx context.Context, actor Actor, id string, req UpdateFaturaRequest) (*FaturaResponse, error) {
	faturaID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.New("invalid fatura id")
	}
	fatura, err := s.faturaRepo.GetByID(ctx, faturaID)
	if err != nil {
		return nil, apperror.NotFound("fatura not found")
	}

	cariID, err := uuid.Parse(req.CariID)
	if err != nil {
		return nil, apperror.New("invalid cari id")
	}
	cari, err := s.cariRepo.GetByID(ctx, cariID)
	if err != nil {
		return nil, apperror.New("cari not found")
	}

	if err := validateItems(req.Items); err != nil {
		return nil, err
	}

	items, err := s.buildItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}
	totals := computeFaturaTotals(req.Items)

	fatura.CariID = cari.ID
	fatura.Type = req.Type
	fatura.Date = req.Date
	fatura.Note = req.Note
	fatura.Subtotal = totals.Subtotal
	fatura.TotalDiscount = totals.TotalDiscount
	fatura.TotalVAT = totals.TotalVAT
	fatura.GrandTotal = totals.GrandTotal

	// Invoice row and line items change together or not at all
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.faturaRepo.Update(txCtx, fatura); err != nil {
			return fmt.Errorf("failed to update fatura: %w", err)
		}
		if err := s.faturaRepo.ReplaceItems(txCtx, fatura.ID, items); err != nil {
			return fmt.Errorf("failed to replace invoice items: %w", err)
		}
		details := fmt.Sprintf("invoice_no: %s, grand_total: %s", fatura.InvoiceNo, fatura.GrandTotal.StringFixed(2))
		return s.logRepo.Create(txCtx, auditEntry(actor, model.LogActionUpdate, "Fatura", fatura.ID.String(), details))
	})
	if err != nil {
		return nil, err
	}

	return s.GetFatura(ctx, id)
}

func (s *faturaService) DeleteFatura(ctx context.Context, actor Actor, id string) error {
	faturaID, err := uuid.Parse(id)
	if err != nil {
		return apperror.New("invalid fatura id")
	}
	fatura, err := s.faturaRepo.GetByID(ctx, faturaID)
	if err != nil {
		return apperror.NotFound("fatura not found")
	}

	// Invoice and line-item deletion are atomic
	return s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.faturaRepo.Delete(txCtx, fatura.ID); err != nil {
			return fmt.Errorf("failed to delete fatura: %w", err)
		}
		return s.logRepo.Create(txCtx, auditEntry(actor, model.LogActionDelete, "Fatura", fatura.ID.String(), "invoice_no: "+fatura.InvoiceNo))
	})
}

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/maidanad/phoneledger-go/internal/core/domain"
	"github.com/maidanad/phoneledger-go/internal/telemetry/metric"
)

// SaleService handles sale lifecycle operations.
type SaleService struct {
	repo    SaleRepository
	audit   *AuditService
	metrics *metric.Metrics
}

// NewSaleService creates a new SaleService.
func NewSaleService(repo SaleRepository, audit *AuditService, metrics *metric.Metrics) *SaleService {
	return &SaleService{repo: repo, audit: audit, metrics: metrics}
}

// CreateSaleRequest contains the sale payload minus the generated and
// derived fields (id, garantia, gananciaARS).
type CreateSaleRequest struct {
	SaleDate      string  `json:"fechaVenta"`
	Supplier      string  `json:"proveedor"`
	Customer      string  `json:"cliente"`
	CustomerPhone string  `json:"clienteTelefono"`
	CustomerEmail string  `json:"clienteEmail"`
	Model         string  `json:"iphone"`
	Condition     string  `json:"estado"`
	Capacity      int     `json:"capacidad"`
	Battery       int     `json:"bateria"`
	Color         string  `json:"color"`
	CostUSD       float64 `json:"costoUSD"`
	CostARS       float64 `json:"costoARS"`
	SaleUSD       float64 `json:"ventaUSD"`
	SaleARS       float64 `json:"ventaARS"`
	Paid          bool    `json:"pagado"`
	PaymentMethod string  `json:"metodoPago"`
	Accessories   string  `json:"accesorios"`
	Delivered     bool    `json:"entregado"`
	DeliveryDate  string  `json:"fechaEntrega"`
	IMEI          string  `json:"imei"`
	Notes         string  `json:"notas"`
}

// List returns a snapshot of all sales.
func (s *SaleService) List(ctx context.Context) []*domain.Sale {
	return s.repo.Sales(ctx)
}

// Get returns one sale by ID.
func (s *SaleService) Get(ctx context.Context, id string) (*domain.Sale, error) {
	return s.repo.SaleByID(ctx, id)
}

// Create adds a new sale. Fails with domain.ErrIMEIConflict when
// another sale already holds the same IMEI; the collection is left
// unchanged in that case.
func (s *SaleService) Create(ctx context.Context, req *CreateSaleRequest) (*domain.Sale, error) {
	if !s.IsIMEIUnique(ctx, req.IMEI, "") {
		return nil, domain.ErrIMEIConflict.WithDetails(req.IMEI)
	}

	id, err := domain.NewSaleID()
	if err != nil {
		return nil, err
	}

	sale := &domain.Sale{
		ID:            id,
		SaleDate:      req.SaleDate,
		Supplier:      req.Supplier,
		Customer:      req.Customer,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		Model:         req.Model,
		Condition:     req.Condition,
		Capacity:      req.Capacity,
		Battery:       req.Battery,
		Color:         req.Color,
		CostUSD:       req.CostUSD,
		CostARS:       req.CostARS,
		SaleUSD:       req.SaleUSD,
		SaleARS:       req.SaleARS,
		Paid:          req.Paid,
		PaymentMethod: req.PaymentMethod,
		Accessories:   req.Accessories,
		Delivered:     req.Delivered,
		DeliveryDate:  req.DeliveryDate,
		IMEI:          req.IMEI,
		Notes:         req.Notes,
	}
	sale.Recompute()

	if err := s.repo.AppendSale(ctx, sale); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.ActionCreate, domain.EntitySale, sale.ID,
		fmt.Sprintf("iPhone %s %dGB %s → %s | %s", sale.Model, sale.Capacity, sale.Color, sale.Customer, sale.IMEI))
	s.metrics.RecordMutation(string(domain.EntitySale), string(domain.ActionCreate))

	return sale, nil
}

// Update merges a partial payload onto the sale. The warranty date is
// recomputed from the new sale date and the profit is always refreshed
// from the resulting amounts, whichever fields changed. Returns
// domain.ErrSaleNotFound for an unknown ID.
func (s *SaleService) Update(ctx context.Context, id string, patch *domain.SalePatch) (*domain.Sale, error) {
	sale, err := s.repo.SaleByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changed := patch.Apply(sale)

	if patch.IMEI != nil && !s.IsIMEIUnique(ctx, sale.IMEI, id) {
		return nil, domain.ErrIMEIConflict.WithDetails(sale.IMEI)
	}

	sale.Recompute()

	if err := s.repo.ReplaceSale(ctx, sale); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.ActionEdit, domain.EntitySale, id,
		"Actualizado: "+strings.Join(changed, ", "))
	s.metrics.RecordMutation(string(domain.EntitySale), string(domain.ActionEdit))

	return sale, nil
}

// Delete removes a sale by ID. Returns domain.ErrSaleNotFound for an
// unknown ID; nothing is logged in that case.
func (s *SaleService) Delete(ctx context.Context, id string) error {
	removed, err := s.repo.RemoveSale(ctx, id)
	if err != nil {
		return err
	}

	s.audit.Record(ctx, domain.ActionDelete, domain.EntitySale, id,
		fmt.Sprintf("Eliminado: iPhone %s - %s", removed.Model, removed.Customer))
	s.metrics.RecordMutation(string(domain.EntitySale), string(domain.ActionDelete))

	return nil
}

// IsIMEIUnique reports whether no sale other than excludeID holds the
// given IMEI. Pure predicate; also used by the edit surface for inline
// validation before submitting.
func (s *SaleService) IsIMEIUnique(ctx context.Context, imei, excludeID string) bool {
	for _, sale := range s.repo.Sales(ctx) {
		if sale.IMEI == imei && sale.ID != excludeID {
			return false
		}
	}
	return true
}

package service

import (
	"context"
	"strings"

	"github.com/maidanad/phoneledger-go/internal/core/domain"
	"github.com/maidanad/phoneledger-go/internal/telemetry/metric"
)

// ClientService handles the customer directory.
type ClientService struct {
	repo    ClientRepository
	audit   *AuditService
	metrics *metric.Metrics
}

// NewClientService creates a new ClientService.
func NewClientService(repo ClientRepository, audit *AuditService, metrics *metric.Metrics) *ClientService {
	return &ClientService{repo: repo, audit: audit, metrics: metrics}
}

// CreateClientRequest contains the client payload minus the generated
// fields (id, createdAt). Names are free-form; duplicates are allowed.
type CreateClientRequest struct {
	Name      string `json:"nombre"`
	Phone     string `json:"telefono"`
	Email     string `json:"email"`
	Address   string `json:"direccion"`
	Instagram string `json:"instagram"`
	Notes     string `json:"notas"`
}

// List returns a snapshot of the directory.
func (s *ClientService) List(ctx context.Context) []*domain.Client {
	return s.repo.Clients(ctx)
}

// Get returns one client by ID.
func (s *ClientService) Get(ctx context.Context, id string) (*domain.Client, error) {
	return s.repo.ClientByID(ctx, id)
}

// Create adds a new client, stamping its creation date.
func (s *ClientService) Create(ctx context.Context, req *CreateClientRequest) (*domain.Client, error) {
	id, err := domain.NewClientID()
	if err != nil {
		return nil, err
	}

	client := &domain.Client{
		ID:        id,
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Address:   req.Address,
		Instagram: req.Instagram,
		Notes:     req.Notes,
		CreatedAt: domain.Today(),
	}

	if err := s.repo.AppendClient(ctx, client); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.ActionCreate, domain.EntityClient, client.ID,
		"Nuevo cliente: "+client.Name)
	s.metrics.RecordMutation(string(domain.EntityClient), string(domain.ActionCreate))

	return client, nil
}

// Update merges a partial payload onto the client. The creation date is
// never touched. Returns domain.ErrClientNotFound for an unknown ID.
func (s *ClientService) Update(ctx context.Context, id string, patch *domain.ClientPatch) (*domain.Client, error) {
	client, err := s.repo.ClientByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changed := patch.Apply(client)

	if err := s.repo.ReplaceClient(ctx, client); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.ActionEdit, domain.EntityClient, id,
		"Cliente actualizado: "+strings.Join(changed, ", "))
	s.metrics.RecordMutation(string(domain.EntityClient), string(domain.ActionEdit))

	return client, nil
}

// Delete removes a client by ID. Sales referencing the client by name
// are left untouched. Returns domain.ErrClientNotFound for an unknown ID.
func (s *ClientService) Delete(ctx context.Context, id string) error {
	removed, err := s.repo.RemoveClient(ctx, id)
	if err != nil {
		return err
	}

	s.audit.Record(ctx, domain.ActionDelete, domain.EntityClient, id,
		"Eliminado: "+removed.Name)
	s.metrics.RecordMutation(string(domain.EntityClient), string(domain.ActionDelete))

	return nil
}

package client

import (
	"context"

	domainClient "logistics-backoffice/internal/domain/client"
	"logistics-backoffice/internal/logger"
	"logistics-backoffice/pkg/utils"

	"go.uber.org/zap"
)

// Service implements client use cases
type Service struct {
	clientRepo domainClient.Repository
}

func NewService(clientRepo domainClient.Repository) *Service {
	return &Service{clientRepo: clientRepo}
}

func (s *Service) Create(ctx context.Context, req *CreateClientRequest) (*ClientResponse, error) {
	req.Sanitize()
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	c := &domainClient.Client{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
		Notes:         req.Notes,
	}
	if err := s.clientRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	logger.Info("Client created",
		zap.Int64("client_id", c.ID),
		zap.String("event", "client_created"),
	)

	return ToClientResponse(c), nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*ClientResponse, error) {
	c, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToClientResponse(c), nil
}

func (s *Service) List(ctx context.Context, req *ListClientsRequest) ([]*ClientResponse, error) {
	clients, err := s.clientRepo.List(ctx, &domainClient.Filter{
		Search: utils.SanitizeString(req.Search),
	})
	if err != nil {
		return nil, err
	}
	return ToClientResponses(clients), nil
}

// Update merges the supplied fields into the stored client.
func (s *Service) Update(ctx context.Context, id int64, req *UpdateClientRequest) (*ClientResponse, error) {
	req.Sanitize()
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	c, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(c)
	if err := s.clientRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	logger.Info("Client updated",
		zap.Int64("client_id", c.ID),
		zap.String("event", "client_updated"),
	)

	return ToClientResponse(c), nil
}

package task

import (
	"context"

	domainOrder "logistics-backoffice/internal/domain/order"
	domainTask "logistics-backoffice/internal/domain/task"
	domainUser "logistics-backoffice/internal/domain/user"
	"logistics-backoffice/internal/logger"
	"logistics-backoffice/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	taskRepo  domainTask.Repository
	userRepo  domainUser.Repository
	orderRepo domainOrder.Repository
}

func NewService(taskRepo domainTask.Repository, userRepo domainUser.Repository, orderRepo domainOrder.Repository) *Service {
	return &Service{
		taskRepo:  taskRepo,
		userRepo:  userRepo,
		orderRepo: orderRepo,
	}
}

func (s *Service) Create(ctx context.Context, req *CreateTaskRequest) (*TaskResponse, error) {
	req.Sanitize()
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	if err := s.checkReferences(ctx, req.AssignedTo, req.RelatedOrderID); err != nil {
		return nil, err
	}

	t := &domainTask.Task{
		Title:          req.Title,
		Description:    req.Description,
		DueDate:        req.DueDate.TimePtr(),
		AssignedTo:     req.AssignedTo,
		RelatedOrderID: req.RelatedOrderID,
		Status:         domainTask.StatusPending,
		Priority:       domainTask.PriorityMedium,
	}
	if req.Status != nil {
		t.Status = *req.Status
	}
	if req.Priority != nil {
		t.Priority = *req.Priority
	}

	if err := s.taskRepo.Create(ctx, t); err != nil {
		return nil, err
	}

	logger.Info("Task created",
		zap.Int64("task_id", t.ID),
		zap.String("priority", string(t.Priority)),
		zap.String("event", "task_created"),
	)

	return ToTaskResponse(t), nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*TaskResponse, error) {
	t, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToTaskResponse(t), nil
}

func (s *Service) List(ctx context.Context, req *ListTasksRequest) ([]*TaskResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.List(ctx, &domainTask.Filter{
		AssignedTo:     req.AssignedTo,
		RelatedOrderID: req.RelatedOrderID,
		Status:         req.Status,
	})
	if err != nil {
		return nil, err
	}
	return ToTaskResponses(tasks), nil
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]*TaskResponse, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.List(ctx, &ListTasksRequest{AssignedTo: &userID})
}

func (s *Service) ListByOrder(ctx context.Context, orderID int64) ([]*TaskResponse, error) {
	if _, err := s.orderRepo.GetByID(ctx, orderID); err != nil {
		return nil, err
	}
	return s.List(ctx, &ListTasksRequest{RelatedOrderID: &orderID})
}

func (s *Service) Update(ctx context.Context, id int64, req *UpdateTaskRequest) (*TaskResponse, error) {
	req.Sanitize()
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	t, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var assignee, orderID *int64
	if req.AssignedTo != nil && (t.AssignedTo == nil || *req.AssignedTo != *t.AssignedTo) {
		assignee = req.AssignedTo
	}
	if req.RelatedOrderID != nil && (t.RelatedOrderID == nil || *req.RelatedOrderID != *t.RelatedOrderID) {
		orderID = req.RelatedOrderID
	}
	if err := s.checkReferences(ctx, assignee, orderID); err != nil {
		return nil, err
	}

	req.ApplyTo(t)
	if err := s.taskRepo.Update(ctx, t); err != nil {
		return nil, err
	}

	logger.Info("Task updated",
		zap.Int64("task_id", t.ID),
		zap.String("status", string(t.Status)),
	)

	return ToTaskResponse(t), nil
}

func (s *Service) checkReferences(ctx context.Context, userID, orderID *int64) error {
	if userID != nil {
		if _, err := s.userRepo.GetByID(ctx, *userID); err != nil {
			return err
		}
	}
	if orderID != nil {
		if _, err := s.orderRepo.GetByID(ctx, *orderID); err != nil {
			return err
		}
	}
	return nil
}

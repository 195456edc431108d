package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	catalogmodel "distribution-oos-backend/internal/domains/catalog/model"
	catalogrepo "distribution-oos-backend/internal/domains/catalog/repository"
	planmodel "distribution-oos-backend/internal/domains/planning/model"
	planrepo "distribution-oos-backend/internal/domains/planning/repository"
	"distribution-oos-backend/internal/domains/request/model"
	requestrepo "distribution-oos-backend/internal/domains/request/repository"
	"distribution-oos-backend/pkg/logger"
)

type Service interface {
	ListRequests(ctx context.Context) ([]model.ChangeRequest, error)
	GetRequest(ctx context.Context, id string) (*model.ChangeRequest, error)
	Submit(ctx context.Context, req model.SubmitChangeRequestReq) (*model.ChangeRequest, error)
	// ValidateText pre-check free text, trả "VALID" hoặc failure code
	ValidateText(ctx context.Context, distributorID, requestText string) (string, error)
	// StartAnalysis flip status sang analyzing rồi chạy full pipeline ở
	// background; kết quả cuối đọc lại qua GetRequest
	StartAnalysis(ctx context.Context, id string) (*model.ChangeRequest, error)
	ManualApprove(ctx context.Context, id string) (*model.ChangeRequest, error)
	Reject(ctx context.Context, id, reason string) (*model.ChangeRequest, error)
}

type requestService struct {
	repo     requestrepo.Repository
	catalog  catalogrepo.Repository
	plans    planrepo.Repository
	analyzer *Analyzer
	interp   *Interpreter
	metrics  MetricsRecorder
}

func NewService(
	repo requestrepo.Repository,
	catalog catalogrepo.Repository,
	plans planrepo.Repository,
	analyzer *Analyzer,
	interp *Interpreter,
	metrics MetricsRecorder,
) Service {
	return &requestService{
		repo:     repo,
		catalog:  catalog,
		plans:    plans,
		analyzer: analyzer,
		interp:   interp,
		metrics:  metrics,
	}
}

func (s *requestService) ListRequests(ctx context.Context) ([]model.ChangeRequest, error) {
	return s.repo.List(ctx)
}

func (s *requestService) GetRequest(ctx context.Context, id string) (*model.ChangeRequest, error) {
	return s.repo.Get(ctx, id)
}

func (s *requestService) Submit(ctx context.Context, req model.SubmitChangeRequestReq) (*model.ChangeRequest, error) {
	if _, err := s.catalog.GetDistributor(ctx, req.DistributorID); err != nil {
		if errors.Is(err, catalogmodel.ErrDistributorNotFound) {
			return nil, model.ErrInvalidDistributor
		}
		return nil, err
	}

	request := model.ChangeRequest{
		ID:               "cr-" + uuid.NewString(),
		DistributorID:    req.DistributorID,
		RequestDate:      time.Now(),
		OriginalOrder:    req.OriginalOrder,
		RequestedChanges: req.RequestedChanges,
		RequestText:      req.RequestText,
		Interpreted:      req.Interpreted,
		Priority:         req.Priority,
		Status:           model.StatusPending,
		Deadline:         req.Deadline,
		Reason:           req.Reason,
		RequestSource:    req.RequestSource,
	}
	if request.Priority == "" {
		request.Priority = model.PriorityMedium
	}

	if err := s.repo.Create(ctx, request); err != nil {
		return nil, err
	}
	if err := s.metrics.RecomputeFromRequests(ctx); err != nil {
		logger.Warn("Failed to recompute metrics after submit", map[string]interface{}{
			"request_id": request.ID,
			"error":      err.Error(),
		})
	}
	return &request, nil
}

func (s *requestService) ValidateText(ctx context.Context, distributorID, requestText string) (string, error) {
	_, err := s.interp.Interpret(ctx, requestText, distributorID)
	if err != nil {
		if code := model.FailureCode(err); code != "" {
			return code, nil
		}
		return "", err
	}
	return "VALID", nil
}

func (s *requestService) StartAnalysis(ctx context.Context, id string) (*model.ChangeRequest, error) {
	request, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if request.Status.IsTerminal() {
		return nil, model.ErrRequestTerminal
	}

	request.Status = model.StatusAnalyzing
	if err := s.repo.Update(ctx, *request); err != nil {
		return nil, err
	}

	// Pipeline phải chạy tới terminal status kể cả khi HTTP request bị
	// hủy, vì decision state ảnh hưởng conflict resolution của request
	// khác. Vì vậy detach khỏi request context.
	go func() {
		if _, err := s.analyzer.RunFullAnalysis(context.Background(), id); err != nil {
			logger.Error("Full analysis failed", err)
		}
	}()

	return request, nil
}

// ManualApprove bỏ qua pipeline: operator tự quyết. Chọn warehouse đủ
// stock (fallback warehouse đầu tiên đang giữ product), route nối tới
// distributor (fallback route đầu tiên), flat route cost.
func (s *requestService) ManualApprove(ctx context.Context, id string) (*model.ChangeRequest, error) {
	request, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	change := request.FirstChange()
	if change == nil {
		return nil, model.ErrInvalidQuantity
	}

	qtyNeeded := change.ToQuantity - change.FromQuantity

	holding, err := s.catalog.WarehousesHolding(ctx, change.ProductID)
	if err != nil {
		return nil, err
	}
	if len(holding) == 0 {
		return nil, catalogmodel.ErrWarehouseNotFound
	}
	warehouse := holding[0]
	for _, w := range holding {
		if w.AvailableStockOf(change.ProductID) >= qtyNeeded {
			warehouse = w
			break
		}
	}

	route, err := s.catalog.RouteBetween(ctx, warehouse.ID, request.DistributorID)
	if err != nil {
		if !errors.Is(err, catalogmodel.ErrRouteNotFound) {
			return nil, err
		}
		routes, err := s.catalog.ListRoutes(ctx)
		if err != nil {
			return nil, err
		}
		if len(routes) == 0 {
			return nil, catalogmodel.ErrRouteNotFound
		}
		route = &routes[0]
	}

	eta := time.Now().Add(time.Duration(route.EstimatedTimeHours * float64(time.Hour)))
	plan := planmodel.SourcePlan{
		RequestID: id,
		Approved:  true,
		Sources: []planmodel.SourceAllocation{
			{
				WarehouseID:       warehouse.ID,
				ProductID:         change.ProductID,
				Quantity:          qtyNeeded,
				RouteID:           route.ID,
				Cost:              route.Cost,
				EstimatedDelivery: eta,
			},
		},
		TotalCost:    route.Cost,
		DeliveryDate: eta,
		RiskAssessment: planmodel.RiskAssessment{
			Level:   planmodel.RiskLow,
			Factors: []string{"Manual approval"},
		},
	}
	if err := s.plans.Replace(ctx, plan); err != nil {
		return nil, err
	}

	request.Status = model.StatusApproved
	request.RejectionReason = ""
	if err := s.repo.Update(ctx, *request); err != nil {
		return nil, err
	}
	if err := s.metrics.RecomputeFromRequests(ctx); err != nil {
		logger.Warn("Failed to recompute metrics after manual approval", map[string]interface{}{
			"request_id": id,
			"error":      err.Error(),
		})
	}
	return request, nil
}

func (s *requestService) Reject(ctx context.Context, id, reason string) (*model.ChangeRequest, error) {
	request, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	request.Status = model.StatusRejected
	request.RejectionReason = reason
	if err := s.plans.DeleteByRequestID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, *request); err != nil {
		return nil, err
	}
	if err := s.metrics.RecomputeFromRequests(ctx); err != nil {
		logger.Warn("Failed to recompute metrics after rejection", map[string]interface{}{
			"request_id": id,
			"error":      err.Error(),
		})
	}
	return request, nil
}

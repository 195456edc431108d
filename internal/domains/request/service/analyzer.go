package service

import (
	"context"
	"strings"
	"time"

	catalogrepo "distribution-oos-backend/internal/domains/catalog/repository"
	planmodel "distribution-oos-backend/internal/domains/planning/model"
	planrepo "distribution-oos-backend/internal/domains/planning/repository"
	planservice "distribution-oos-backend/internal/domains/planning/service"
	"distribution-oos-backend/internal/domains/request/model"
	requestrepo "distribution-oos-backend/internal/domains/request/repository"
	"distribution-oos-backend/internal/shared"
	"distribution-oos-backend/internal/shared/lock"
	"distribution-oos-backend/pkg/logger"
)

// MetricsRecorder cập nhật aggregate metrics sau mỗi decision
type MetricsRecorder interface {
	RecomputeFromRequests(ctx context.Context) error
}

// DecisionNotifier đẩy decision notice ra queue cho downstream consumers
type DecisionNotifier interface {
	NotifyDecision(ctx context.Context, payload shared.DecisionNoticePayload) error
}

// Analyzer chạy full pipeline cho một request:
// conflict resolution → source planning → risk evaluation → decision.
// Write per request id được serialize bằng keyed lock; các request id
// khác nhau phân tích song song được.
type Analyzer struct {
	requests  requestrepo.Repository
	catalog   catalogrepo.Repository
	plans     planrepo.Repository
	planner   *planservice.Planner
	evaluator *planservice.Evaluator
	metrics   MetricsRecorder
	notifier  DecisionNotifier
	locks     *lock.Keyed
}

func NewAnalyzer(
	requests requestrepo.Repository,
	catalog catalogrepo.Repository,
	plans planrepo.Repository,
	planner *planservice.Planner,
	evaluator *planservice.Evaluator,
	metrics MetricsRecorder,
	notifier DecisionNotifier,
) *Analyzer {
	return &Analyzer{
		requests:  requests,
		catalog:   catalog,
		plans:     plans,
		planner:   planner,
		evaluator: evaluator,
		metrics:   metrics,
		notifier:  notifier,
		locks:     lock.NewKeyed(),
	}
}

// RunFullAnalysis đưa request tới terminal status (approved/rejected).
// Pipeline luôn chạy tới cùng kể cả khi caller bỏ đi, vì nó mutate
// decision state mà conflict resolution của request khác phụ thuộc vào.
func (a *Analyzer) RunFullAnalysis(ctx context.Context, requestID string) (*model.ChangeRequest, error) {
	a.locks.Lock(requestID)
	defer a.locks.Unlock(requestID)

	request, err := a.requests.Get(ctx, requestID)
	if err != nil {
		return nil, err
	}
	change := request.FirstChange()
	if change == nil {
		return nil, model.ErrInvalidQuantity
	}

	product, err := a.catalog.GetProduct(ctx, change.ProductID)
	if err != nil {
		return nil, err
	}

	// Conflict snapshot: chụp một lần, atomic với run này
	all, err := a.requests.List(ctx)
	if err != nil {
		return nil, err
	}
	allowedQty := ResolveConflicts(request, all)

	sourcing, err := a.planner.PlanSources(ctx, request.DistributorID, change.ProductID, change.FromQuantity, allowedQty)
	if err != nil {
		return nil, err
	}

	risk, err := a.evaluator.Evaluate(ctx, request.DistributorID, change.ProductID, change.FromQuantity, allowedQty, sourcing, product.UnitCost)
	if err != nil {
		return nil, err
	}

	shouldApprove := sourcing.FulfilledQty > 0 && risk.NetImpact.IsPositive() && risk.Level != planmodel.RiskHigh

	// Gắn kết quả phân tích vào interpreted request
	if request.Interpreted == nil {
		request.Interpreted = &model.InterpretedRequest{}
	}
	request.Interpreted.Confidence = 0.92
	satisfaction := 0.6
	if shouldApprove {
		satisfaction = 0.9
	}
	request.Interpreted.EstimatedImpact = model.EstimatedImpact{
		Revenue:              risk.RevenueImpact,
		Volume:               sourcing.FulfilledQty,
		CustomerSatisfaction: satisfaction,
	}

	if shouldApprove {
		factors := risk.Factors
		if len(factors) == 0 {
			factors = []string{"All systems optimal", "Sufficient inventory available"}
		}
		plan := planmodel.SourcePlan{
			RequestID:    requestID,
			Approved:     true,
			Sources:      sourcing.Sources,
			TotalCost:    sourcing.TotalCost,
			DeliveryDate: sourcing.DeliveryDate,
			RiskAssessment: planmodel.RiskAssessment{
				Level:   risk.Level,
				Factors: factors,
			},
		}
		if err := a.plans.Replace(ctx, plan); err != nil {
			return nil, err
		}
		request.Status = model.StatusApproved
		request.RejectionReason = ""
	} else {
		var reasons []string
		if sourcing.FulfilledQty == 0 {
			reasons = append(reasons, "No inventory available")
		}
		if risk.NetImpact.IsNegative() {
			reasons = append(reasons, "Negative revenue impact")
		}
		if risk.Level == planmodel.RiskHigh {
			reasons = append(reasons, "High risk assessment")
		}
		request.Status = model.StatusRejected
		request.RejectionReason = strings.Join(reasons, "; ")
		// rejected request không được giữ plan đã approve
		if err := a.plans.DeleteByRequestID(ctx, requestID); err != nil {
			return nil, err
		}
	}

	if err := a.requests.Update(ctx, *request); err != nil {
		return nil, err
	}

	if err := a.metrics.RecomputeFromRequests(ctx); err != nil {
		logger.Warn("Failed to recompute metrics after decision", map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		})
	}

	if a.notifier != nil {
		payload := shared.DecisionNoticePayload{
			RequestID:       requestID,
			DistributorID:   request.DistributorID,
			ProductID:       change.ProductID,
			Approved:        shouldApprove,
			RejectionReason: request.RejectionReason,
			FulfilledQty:    sourcing.FulfilledQty,
			TotalCost:       sourcing.TotalCost.String(),
			RiskLevel:       string(risk.Level),
			DecidedAt:       time.Now(),
		}
		if err := a.notifier.NotifyDecision(ctx, payload); err != nil {
			logger.Warn("Failed to enqueue decision notice", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
		}
	}

	return request, nil
}

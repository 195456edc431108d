package service

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogrepo "distribution-oos-backend/internal/domains/catalog/repository"
	forecastrepo "distribution-oos-backend/internal/domains/forecast/repository"
	metricsservice "distribution-oos-backend/internal/domains/metrics/service"
	planmodel "distribution-oos-backend/internal/domains/planning/model"
	planrepo "distribution-oos-backend/internal/domains/planning/repository"
	planservice "distribution-oos-backend/internal/domains/planning/service"
	"distribution-oos-backend/internal/domains/request/model"
	requestrepo "distribution-oos-backend/internal/domains/request/repository"
	"distribution-oos-backend/internal/shared"
)

type capturedNotice struct {
	mu      sync.Mutex
	notices []shared.DecisionNoticePayload
}

func (c *capturedNotice) NotifyDecision(ctx context.Context, payload shared.DecisionNoticePayload) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notices = append(c.notices, payload)
	return nil
}

func (c *capturedNotice) last(t *testing.T) shared.DecisionNoticePayload {
	c.mu.Lock()
	defer c.mu.Unlock()
	require.NotEmpty(t, c.notices)
	return c.notices[len(c.notices)-1]
}

type analyzerFixture struct {
	analyzer *Analyzer
	requests *requestrepo.MemoryRepository
	plans    *planrepo.MemoryRepository
	metrics  metricsservice.Service
	notices  *capturedNotice
}

func newAnalyzerFixture(requests []model.ChangeRequest) *analyzerFixture {
	requestRepo := requestrepo.NewMemoryRepository(requests)
	planRepo := planrepo.NewMemoryRepository(nil)
	catalogRepo := catalogrepo.NewSeededMemoryRepository()
	forecastRepo := forecastrepo.NewSeededMemoryRepository()
	metrics := metricsservice.NewService(requestRepo, nil)
	notices := &capturedNotice{}

	analyzer := NewAnalyzer(
		requestRepo,
		catalogRepo,
		planRepo,
		planservice.NewPlanner(catalogRepo),
		planservice.NewEvaluator(forecastRepo),
		metrics,
		notices,
	)
	return &analyzerFixture{
		analyzer: analyzer,
		requests: requestRepo,
		plans:    planRepo,
		metrics:  metrics,
		notices:  notices,
	}
}

func lagerIncreaseRequest(id string, priority model.Priority, status model.RequestStatus) model.ChangeRequest {
	return model.ChangeRequest{
		ID:            id,
		DistributorID: "d1",
		RequestedChanges: []model.RequestedChange{
			{Type: model.ChangeIncrease, ProductID: "p1", FromQuantity: 1000, ToQuantity: 1500},
		},
		Priority: priority,
		Status:   status,
	}
}

func TestAnalyzer_ApprovesWhenInventoryAndMarginExist(t *testing.T) {
	fx := newAnalyzerFixture([]model.ChangeRequest{
		lagerIncreaseRequest("cr-t1", model.PriorityHigh, model.StatusPending),
	})

	got, err := fx.analyzer.RunFullAnalysis(context.Background(), "cr-t1")
	require.NoError(t, err)

	assert.Equal(t, model.StatusApproved, got.Status)
	assert.Empty(t, got.RejectionReason)

	// interpreted impact được ghi lại từ pipeline
	require.NotNil(t, got.Interpreted)
	assert.InDelta(t, 0.92, got.Interpreted.Confidence, 0.001)
	assert.Equal(t, 500, got.Interpreted.EstimatedImpact.Volume)
	assert.True(t, got.Interpreted.EstimatedImpact.Revenue.Equal(decimal.NewFromInt(1750)))
	assert.InDelta(t, 0.9, got.Interpreted.EstimatedImpact.CustomerSatisfaction, 0.001)

	plan, err := fx.plans.GetByRequestID(context.Background(), "cr-t1")
	require.NoError(t, err)
	assert.True(t, plan.Approved)
	assert.True(t, plan.TotalCost.Equal(decimal.NewFromInt(850)))
	assert.Equal(t, planmodel.RiskLow, plan.RiskAssessment.Level)
	// không có risk factor nào nên plan nhận cặp default
	assert.Equal(t, []string{"All systems optimal", "Sufficient inventory available"}, plan.RiskAssessment.Factors)

	notice := fx.notices.last(t)
	assert.True(t, notice.Approved)
	assert.Equal(t, 500, notice.FulfilledQty)

	snapshot, err := fx.metrics.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, snapshot.TotalRequests)
	assert.Equal(t, 1, snapshot.ApprovedRequests)
	assert.InDelta(t, 100.0, snapshot.FulfillmentRate, 0.001)
}

func TestAnalyzer_HigherPriorityCompetitorForcesRejection(t *testing.T) {
	fx := newAnalyzerFixture([]model.ChangeRequest{
		lagerIncreaseRequest("cr-t1", model.PriorityMedium, model.StatusPending),
		lagerIncreaseRequest("cr-t2", model.PriorityCritical, model.StatusPending),
	})

	got, err := fx.analyzer.RunFullAnalysis(context.Background(), "cr-t1")
	require.NoError(t, err)

	// clamp về fromQuantity ⇒ qtyNeeded 0 ⇒ không fulfill được gì
	assert.Equal(t, model.StatusRejected, got.Status)
	assert.Equal(t, "No inventory available; High risk assessment", got.RejectionReason)
	assert.InDelta(t, 0.6, got.Interpreted.EstimatedImpact.CustomerSatisfaction, 0.001)

	_, err = fx.plans.GetByRequestID(context.Background(), "cr-t1")
	assert.ErrorIs(t, err, planmodel.ErrPlanNotFound)

	notice := fx.notices.last(t)
	assert.False(t, notice.Approved)
	assert.Equal(t, 0, notice.FulfilledQty)

	snapshot, err := fx.metrics.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, snapshot.TotalRequests)
	assert.Equal(t, 1, snapshot.RejectedRequests)
}

func TestAnalyzer_RejectionReplacesPriorApprovedPlan(t *testing.T) {
	fx := newAnalyzerFixture([]model.ChangeRequest{
		lagerIncreaseRequest("cr-t1", model.PriorityMedium, model.StatusPending),
		lagerIncreaseRequest("cr-t2", model.PriorityCritical, model.StatusPending),
	})
	// plan cũ từ lần phân tích trước
	require.NoError(t, fx.plans.Replace(context.Background(), planmodel.SourcePlan{
		RequestID: "cr-t1",
		Approved:  true,
	}))

	_, err := fx.analyzer.RunFullAnalysis(context.Background(), "cr-t1")
	require.NoError(t, err)

	// rejected request không được giữ approved plan
	_, err = fx.plans.GetByRequestID(context.Background(), "cr-t1")
	assert.ErrorIs(t, err, planmodel.ErrPlanNotFound)
}

func TestAnalyzer_UnknownRequest(t *testing.T) {
	fx := newAnalyzerFixture(nil)

	_, err := fx.analyzer.RunFullAnalysis(context.Background(), "cr-missing")
	assert.ErrorIs(t, err, model.ErrRequestNotFound)
}

func TestAnalyzer_ConcurrentRunsOnDifferentRequests(t *testing.T) {
	fx := newAnalyzerFixture([]model.ChangeRequest{
		lagerIncreaseRequest("cr-t1", model.PriorityHigh, model.StatusPending),
		{
			ID:            "cr-t2",
			DistributorID: "d3",
			RequestedChanges: []model.RequestedChange{
				{Type: model.ChangeIncrease, ProductID: "p2", FromQuantity: 600, ToQuantity: 900},
			},
			Priority: model.PriorityMedium,
			Status:   model.StatusPending,
		},
	})

	var wg sync.WaitGroup
	for _, id := range []string{"cr-t1", "cr-t2"} {
		wg.Add(1)
		go func(requestID string) {
			defer wg.Done()
			_, err := fx.analyzer.RunFullAnalysis(context.Background(), requestID)
			assert.NoError(t, err)
		}(id)
	}
	wg.Wait()

	for _, id := range []string{"cr-t1", "cr-t2"} {
		got, err := fx.requests.Get(context.Background(), id)
		require.NoError(t, err)
		assert.True(t, got.Status.IsTerminal(), "request %s stuck in %s", id, got.Status)
	}
}

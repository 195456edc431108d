package service

import (
	"context"
	"testing"
	"time"

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
)

func newTestService() (Service, *requestrepo.MemoryRepository, *planrepo.MemoryRepository) {
	requestRepo := requestrepo.NewSeededMemoryRepository()
	planRepo := planrepo.NewSeededMemoryRepository()
	catalogRepo := catalogrepo.NewSeededMemoryRepository()
	forecastRepo := forecastrepo.NewSeededMemoryRepository()
	metrics := metricsservice.NewService(requestRepo, nil)

	analyzer := NewAnalyzer(
		requestRepo,
		catalogRepo,
		planRepo,
		planservice.NewPlanner(catalogRepo),
		planservice.NewEvaluator(forecastRepo),
		metrics,
		nil,
	)
	svc := NewService(requestRepo, catalogRepo, planRepo, analyzer, NewInterpreter(catalogRepo), metrics)
	return svc, requestRepo, planRepo
}

func TestRequestService_Submit(t *testing.T) {
	svc, repo, _ := newTestService()

	got, err := svc.Submit(context.Background(), model.SubmitChangeRequestReq{
		DistributorID: "d1",
		RequestedChanges: []model.RequestedChange{
			{Type: model.ChangeIncrease, ProductID: "p1", FromQuantity: 100, ToQuantity: 200},
		},
		RequestText:   "Need to bump premium lager 100 to 200 for the weekend rush.",
		Deadline:      time.Now().Add(12 * time.Hour),
		RequestSource: model.SourceEmail,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, got.ID)
	assert.Equal(t, model.StatusPending, got.Status)
	// priority mặc định medium khi không set
	assert.Equal(t, model.PriorityMedium, got.Priority)

	stored, err := repo.Get(context.Background(), got.ID)
	require.NoError(t, err)
	assert.Equal(t, got.RequestText, stored.RequestText)
}

func TestRequestService_SubmitUnknownDistributor(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Submit(context.Background(), model.SubmitChangeRequestReq{
		DistributorID: "d999",
		RequestedChanges: []model.RequestedChange{
			{Type: model.ChangeIncrease, ProductID: "p1", FromQuantity: 100, ToQuantity: 200},
		},
		RequestText: "Need to bump premium lager 100 to 200.",
	})
	assert.ErrorIs(t, err, model.ErrInvalidDistributor)
}

func TestRequestService_ValidateText(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	tests := []struct {
		name          string
		distributorID string
		text          string
		want          string
	}{
		{"valid", "d1", "Increase premium lager from 1000 to 1500 units please", "VALID"},
		{"unknown distributor", "d999", "Increase premium lager from 1000 to 1500 units", "INVALID_DISTRIBUTOR"},
		{"no product", "d1", "Increase our usual order from 10 to 20", "INVALID_PRODUCT"},
		{"no quantity", "d1", "We would like somewhat more premium lager", "INVALID_QUANTITY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ValidateText(ctx, tt.distributorID, tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequestService_StartAnalysisRejectsTerminal(t *testing.T) {
	svc, _, _ := newTestService()

	// cr1 seed đã approved
	_, err := svc.StartAnalysis(context.Background(), "cr1")
	assert.ErrorIs(t, err, model.ErrRequestTerminal)
}

func TestRequestService_ManualApprove(t *testing.T) {
	svc, repo, plans := newTestService()

	// cr3: d3 muốn p2 600→900
	got, err := svc.ManualApprove(context.Background(), "cr3")
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, got.Status)

	plan, err := plans.GetByRequestID(context.Background(), "cr3")
	require.NoError(t, err)
	assert.True(t, plan.Approved)
	assert.Equal(t, planmodel.RiskLow, plan.RiskAssessment.Level)
	assert.Equal(t, []string{"Manual approval"}, plan.RiskAssessment.Factors)

	require.Len(t, plan.Sources, 1)
	assert.Equal(t, 300, plan.Sources[0].Quantity)
	// flat route cost, không chia tỷ lệ
	assert.True(t, plan.TotalCost.Equal(plan.Sources[0].Cost))

	stored, err := repo.Get(context.Background(), "cr3")
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, stored.Status)
}

func TestRequestService_Reject(t *testing.T) {
	svc, repo, plans := newTestService()

	got, err := svc.Reject(context.Background(), "cr1", "Operator override: allocation needed elsewhere")
	require.NoError(t, err)
	assert.Equal(t, model.StatusRejected, got.Status)
	assert.Equal(t, "Operator override: allocation needed elsewhere", got.RejectionReason)

	// plan seed của cr1 phải bị gỡ
	_, err = plans.GetByRequestID(context.Background(), "cr1")
	assert.ErrorIs(t, err, planmodel.ErrPlanNotFound)

	stored, err := repo.Get(context.Background(), "cr1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusRejected, stored.Status)
}

package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"distribution-oos-backend/internal/domains/planning/model"
)

func TestMemoryRepository_ReplaceKeepsOnePlanPerRequest(t *testing.T) {
	repo := NewSeededMemoryRepository()
	ctx := context.Background()

	// seed có plan cho cr1
	seeded, err := repo.GetByRequestID(ctx, "cr1")
	require.NoError(t, err)
	assert.True(t, seeded.Approved)

	replacement := model.SourcePlan{
		RequestID: "cr1",
		Approved:  true,
		TotalCost: decimal.NewFromInt(999),
	}
	require.NoError(t, repo.Replace(ctx, replacement))

	got, err := repo.GetByRequestID(ctx, "cr1")
	require.NoError(t, err)
	assert.True(t, got.TotalCost.Equal(decimal.NewFromInt(999)))

	plans, err := repo.List(ctx)
	require.NoError(t, err)
	count := 0
	for _, p := range plans {
		if p.RequestID == "cr1" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestMemoryRepository_DeleteByRequestID(t *testing.T) {
	repo := NewSeededMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.DeleteByRequestID(ctx, "cr1"))

	_, err := repo.GetByRequestID(ctx, "cr1")
	assert.ErrorIs(t, err, model.ErrPlanNotFound)

	// xoá id không tồn tại không phải lỗi
	require.NoError(t, repo.DeleteByRequestID(ctx, "cr-missing"))
}

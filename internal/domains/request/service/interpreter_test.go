package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogrepo "distribution-oos-backend/internal/domains/catalog/repository"
	"distribution-oos-backend/internal/domains/request/model"
)

func TestInterpreter_Interpret(t *testing.T) {
	interp := NewInterpreter(catalogrepo.NewSeededMemoryRepository())
	ctx := context.Background()

	tests := []struct {
		name          string
		text          string
		distributorID string
		wantErr       error
		wantProduct   string
		wantFrom      int
		wantTo        int
		wantType      model.ChangeType
		wantConf      float64
	}{
		{
			name:          "range pattern with two keyword matches",
			text:          "We need to increase our Premium Lager order from 1000 to 1500 units for the weekend.",
			distributorID: "d1",
			wantProduct:   "p1",
			wantFrom:      1000,
			wantTo:        1500,
			wantType:      model.ChangeIncrease,
			wantConf:      0.8,
		},
		{
			name:          "single number infers twenty percent increase",
			text:          "Need 500 units of craft ipa for the conference.",
			distributorID: "d3",
			wantProduct:   "p2",
			wantFrom:      400,
			wantTo:        500,
			wantType:      model.ChangeIncrease,
			wantConf:      0.8,
		},
		{
			name:          "decrease when target below source",
			text:          "Please reduce the red wine order 400 to 250 for next week.",
			distributorID: "d4",
			wantProduct:   "p3",
			wantFrom:      400,
			wantTo:        250,
			wantType:      model.ChangeDecrease,
			wantConf:      0.8,
		},
		{
			name:          "replace keyword forces substitute",
			text:          "Please replace the vodka order, 300 to 300 units.",
			distributorID: "d2",
			wantProduct:   "p4",
			wantFrom:      300,
			wantTo:        300,
			wantType:      model.ChangeSubstitute,
			wantConf:      0.7,
		},
		{
			name:          "unknown distributor",
			text:          "Increase premium lager 100 to 200.",
			distributorID: "d999",
			wantErr:       model.ErrInvalidDistributor,
		},
		{
			name:          "no product keywords",
			text:          "Please bump our order from 10 to 20 cases.",
			distributorID: "d1",
			wantErr:       model.ErrInvalidProduct,
		},
		{
			name:          "no quantity pattern",
			text:          "We urgently need much more premium lager soon.",
			distributorID: "d1",
			wantErr:       model.ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := interp.Interpret(ctx, tt.text, tt.distributorID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantProduct, got.ProductID)
			assert.Equal(t, tt.wantFrom, got.FromQuantity)
			assert.Equal(t, tt.wantTo, got.ToQuantity)
			assert.Equal(t, tt.wantType, got.ChangeType)
			assert.InDelta(t, tt.wantConf, got.Confidence, 0.001)
		})
	}
}

func TestInterpreter_KeywordOrderWins(t *testing.T) {
	interp := NewInterpreter(catalogrepo.NewSeededMemoryRepository())

	// Text mentions both p5 (rtd cocktail) and p1 (premium lager); the
	// scan stops at the first table entry that matches, which is p1.
	got, err := interp.Interpret(context.Background(),
		"URGENT: substitute our RTD Cocktail order (800 units) with Premium Lager.", "d2")
	require.NoError(t, err)
	assert.Equal(t, "p1", got.ProductID)
	assert.Equal(t, model.ChangeSubstitute, got.ChangeType)
	assert.Equal(t, 800, got.ToQuantity)
	assert.Equal(t, 640, got.FromQuantity)
}

func TestInterpreter_ConfidenceCap(t *testing.T) {
	interp := NewInterpreter(catalogrepo.NewSeededMemoryRepository())

	// All four p1 keywords present: 0.6 + 4*0.1 capped at 0.9
	got, err := interp.Interpret(context.Background(),
		"premium lager aka premium beer, beer 500ml, plain lager: 100 to 200 units", "d1")
	require.NoError(t, err)
	assert.Equal(t, "p1", got.ProductID)
	assert.InDelta(t, 0.9, got.Confidence, 0.001)
}

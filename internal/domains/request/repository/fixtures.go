package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"distribution-oos-backend/internal/domains/request/model"
)

// Demo fixtures cho môi trường development; production dùng store riêng.
func SeedRequests() []model.ChangeRequest {
	now := time.Now()
	return []model.ChangeRequest{
		{
			ID:            "cr1",
			DistributorID: "d1",
			RequestDate:   now,
			OriginalOrder: []model.OrderItem{
				{ProductID: "p1", Quantity: 1000, UnitPrice: decimal.NewFromFloat(2.50), ScheduledDelivery: now.Add(24 * time.Hour)},
			},
			RequestedChanges: []model.RequestedChange{
				{Type: model.ChangeIncrease, ProductID: "p1", FromQuantity: 1000, ToQuantity: 1500, Reason: "Giants game at Oracle Park this weekend - expecting high demand"},
			},
			RequestText: "Hi team, we need to increase our Premium Lager order from 1000 to 1500 units due to a major Giants game at Oracle Park this weekend. All the sports bars in SOMA are expecting huge crowds. Can you accommodate this change?",
			Interpreted: &model.InterpretedRequest{
				Confidence: 0.95,
				ExtractedChanges: []model.RequestedChange{
					{Type: model.ChangeIncrease, ProductID: "p1", FromQuantity: 1000, ToQuantity: 1500, Reason: "Giants game at Oracle Park this weekend - expecting high demand"},
				},
				UrgencyLevel:    model.UrgencyHigh,
				BusinessReason:  "Giants game driving increased demand in SOMA area",
				EstimatedImpact: model.EstimatedImpact{Revenue: decimal.NewFromInt(1250), Volume: 500, CustomerSatisfaction: 0.85},
				KeyTerms:        []string{"increase", "Giants game", "Oracle Park", "sports bars", "SOMA"},
			},
			Priority:      model.PriorityHigh,
			Status:        model.StatusApproved,
			Deadline:      now.Add(12 * time.Hour),
			Reason:        "Giants game demand spike",
			RequestSource: model.SourceEmail,
		},
		{
			ID:            "cr2",
			DistributorID: "d2",
			RequestDate:   now.Add(-1 * time.Hour),
			OriginalOrder: []model.OrderItem{
				{ProductID: "p5", Quantity: 800, UnitPrice: decimal.NewFromFloat(4.50), ScheduledDelivery: now.Add(48 * time.Hour)},
			},
			RequestedChanges: []model.RequestedChange{
				{Type: model.ChangeSubstitute, ProductID: "p5", FromQuantity: 800, ToQuantity: 800, AlternativeProductID: "p1", Reason: "Quality concerns with RTD batch reported by Fishermans Wharf restaurants"},
			},
			RequestText: "URGENT: We need to substitute our RTD Cocktail order (800 units) with Premium Lager due to quality issues reported by customers at Fishermans Wharf restaurants. Same quantity needed ASAP.",
			Interpreted: &model.InterpretedRequest{
				Confidence: 0.92,
				ExtractedChanges: []model.RequestedChange{
					{Type: model.ChangeSubstitute, ProductID: "p5", FromQuantity: 800, ToQuantity: 800, AlternativeProductID: "p1", Reason: "Quality concerns with RTD batch reported by Fishermans Wharf restaurants"},
				},
				UrgencyLevel:    model.UrgencyCritical,
				BusinessReason:  "Quality control issue at tourist location",
				EstimatedImpact: model.EstimatedImpact{Revenue: decimal.NewFromInt(-1600), Volume: 0, CustomerSatisfaction: 0.95},
				KeyTerms:        []string{"URGENT", "substitute", "quality issues", "Fishermans Wharf", "restaurants"},
			},
			Priority:      model.PriorityCritical,
			Status:        model.StatusPending,
			Deadline:      now.Add(6 * time.Hour),
			Reason:        "Quality control emergency",
			RequestSource: model.SourceServiceNow,
		},
		{
			ID:            "cr3",
			DistributorID: "d3",
			RequestDate:   now.Add(-2 * time.Hour),
			OriginalOrder: []model.OrderItem{
				{ProductID: "p2", Quantity: 600, UnitPrice: decimal.NewFromFloat(3.20), ScheduledDelivery: now.Add(72 * time.Hour)},
			},
			RequestedChanges: []model.RequestedChange{
				{Type: model.ChangeIncrease, ProductID: "p2", FromQuantity: 600, ToQuantity: 900, Reason: "Tech conference at Moscone Center - craft beer demand surge expected"},
			},
			RequestText: "Hello, we have a big tech conference at Moscone Center next week and all the Mission District craft beer bars are requesting more IPA inventory. Can we increase our Craft IPA order from 600 to 900 units?",
			Interpreted: &model.InterpretedRequest{
				Confidence: 0.88,
				ExtractedChanges: []model.RequestedChange{
					{Type: model.ChangeIncrease, ProductID: "p2", FromQuantity: 600, ToQuantity: 900, Reason: "Tech conference at Moscone Center - craft beer demand surge expected"},
				},
				UrgencyLevel:    model.UrgencyMedium,
				BusinessReason:  "Tech conference driving craft beer demand in Mission District",
				EstimatedImpact: model.EstimatedImpact{Revenue: decimal.NewFromInt(960), Volume: 300, CustomerSatisfaction: 0.80},
				KeyTerms:        []string{"tech conference", "Moscone Center", "Mission District", "craft beer", "IPA"},
			},
			Priority:      model.PriorityMedium,
			Status:        model.StatusPending,
			Deadline:      now.Add(24 * time.Hour),
			Reason:        "Conference-driven demand",
			RequestSource: model.SourceEmail,
		},
		{
			ID:            "cr4",
			DistributorID: "d1",
			RequestDate:   now.Add(-30 * time.Minute),
			OriginalOrder: []model.OrderItem{
				{ProductID: "p1", Quantity: 300, UnitPrice: decimal.NewFromFloat(2.75), ScheduledDelivery: now.Add(24 * time.Hour)},
			},
			RequestedChanges: []model.RequestedChange{
				{Type: model.ChangeIncrease, ProductID: "p1", FromQuantity: 300, ToQuantity: 450, Reason: "Local brewery tour groups confirmed for weekend"},
			},
			RequestText: "Hi team, we need to increase our Premium Lager order from 300 to 450 units. We have confirmed brewery tour groups coming this weekend and expect higher demand.",
			Interpreted: &model.InterpretedRequest{
				Confidence: 0.88,
				ExtractedChanges: []model.RequestedChange{
					{Type: model.ChangeIncrease, ProductID: "p1", FromQuantity: 300, ToQuantity: 450, Reason: "Local brewery tour groups confirmed for weekend"},
				},
				UrgencyLevel:    model.UrgencyMedium,
				BusinessReason:  "Increased demand from brewery tours",
				EstimatedImpact: model.EstimatedImpact{Revenue: decimal.NewFromFloat(412.5), Volume: 150, CustomerSatisfaction: 0.85},
				KeyTerms:        []string{"increase", "Premium Lager", "brewery tour", "weekend", "demand"},
			},
			Priority:      model.PriorityMedium,
			Status:        model.StatusAnalyzing,
			Deadline:      now.Add(18 * time.Hour),
			Reason:        "Weekend demand spike expected",
			RequestSource: model.SourceEmail,
		},
	}
}

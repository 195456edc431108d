package model

// Metrics là aggregate counters cho dashboard - derived từ request set,
// không phải nguồn sự thật.
type Metrics struct {
	TotalRequests        int     `json:"total_requests"`
	ApprovedRequests     int     `json:"approved_requests"`
	RejectedRequests     int     `json:"rejected_requests"`
	AverageResponseTime  float64 `json:"average_response_time"`
	FulfillmentRate      float64 `json:"fulfillment_rate"`
	CostOptimization     float64 `json:"cost_optimization"`
	CustomerSatisfaction float64 `json:"customer_satisfaction"`
	InventoryTurnover    float64 `json:"inventory_turnover"`
	RouteEfficiency      float64 `json:"route_efficiency"`
}

// SeedMetrics là snapshot demo ban đầu; các counter request-derived sẽ
// bị recompute ngay sau decision đầu tiên.
func SeedMetrics() Metrics {
	return Metrics{
		TotalRequests:        3,
		ApprovedRequests:     1,
		RejectedRequests:     0,
		AverageResponseTime:  1.8,
		FulfillmentRate:      96.4,
		CostOptimization:     18.5,
		CustomerSatisfaction: 91.2,
		InventoryTurnover:    9.1,
		RouteEfficiency:      94.7,
	}
}

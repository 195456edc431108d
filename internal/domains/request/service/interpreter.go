package service

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	catalogrepo "distribution-oos-backend/internal/domains/catalog/repository"
	"distribution-oos-backend/internal/domains/request/model"
)

// Keyword table có thứ tự: scan dừng ở product ĐẦU TIÊN match bất kỳ
// keyword nào, nên thứ tự entries là một phần của contract.
type productKeywords struct {
	ProductID string
	Keywords  []string
}

var keywordTable = []productKeywords{
	{ProductID: "p1", Keywords: []string{"premium lager", "lager", "beer 500ml", "premium beer"}},
	{ProductID: "p2", Keywords: []string{"craft ipa", "ipa", "craft beer", "pale ale"}},
	{ProductID: "p3", Keywords: []string{"red wine", "wine", "cabernet", "merlot"}},
	{ProductID: "p4", Keywords: []string{"vodka", "premium vodka", "spirits", "distilled"}},
	{ProductID: "p5", Keywords: []string{"rtd cocktail", "cocktail", "ready to drink", "rtd"}},
	{ProductID: "p6", Keywords: []string{"light beer", "light lager", "low calorie beer"}},
}

// Pattern theo độ ưu tiên: "X to/→ Y" | "increase ... X ... Y" | "X units"
var quantityPattern = regexp.MustCompile(`(?i)(\d+)\s*(?:to|→)\s*(\d+)|increase.*?(\d+).*?(\d+)|(\d+)\s*units?`)

// InterpretedChange là structured output của một lần interpret free text
type InterpretedChange struct {
	ProductID    string
	FromQuantity int
	ToQuantity   int
	ChangeType   model.ChangeType
	Confidence   float64
}

type Interpreter struct {
	catalog catalogrepo.Repository
}

func NewInterpreter(catalog catalogrepo.Repository) *Interpreter {
	return &Interpreter{catalog: catalog}
}

// Interpret parse free text thành một structured change.
// Fail với ErrInvalidDistributor / ErrInvalidProduct / ErrInvalidQuantity.
func (i *Interpreter) Interpret(ctx context.Context, requestText, distributorID string) (*InterpretedChange, error) {
	// Step 1: distributor phải tồn tại trong catalog
	if _, err := i.catalog.GetDistributor(ctx, distributorID); err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrInvalidDistributor, distributorID)
	}

	// Step 2: detect product qua keyword match
	lowered := strings.ToLower(requestText)
	var productID string
	var confidence float64
	for _, entry := range keywordTable {
		matches := 0
		for _, kw := range entry.Keywords {
			if strings.Contains(lowered, kw) {
				matches++
			}
		}
		if matches > 0 {
			productID = entry.ProductID
			confidence = math.Min(0.9, 0.6+float64(matches)*0.1)
			break
		}
	}
	if productID == "" {
		return nil, model.ErrInvalidProduct
	}

	// Step 3: extract quantities
	m := quantityPattern.FindStringSubmatch(requestText)
	if m == nil {
		return nil, model.ErrInvalidQuantity
	}
	var fromQty, toQty int
	switch {
	case m[1] != "" && m[2] != "":
		fromQty, _ = strconv.Atoi(m[1])
		toQty, _ = strconv.Atoi(m[2])
	case m[3] != "" && m[4] != "":
		fromQty, _ = strconv.Atoi(m[3])
		toQty, _ = strconv.Atoi(m[4])
	case m[5] != "":
		toQty, _ = strconv.Atoi(m[5])
		// chỉ có một số: giả định đây là mức tăng 20%
		fromQty = int(math.Floor(float64(toQty) * 0.8))
	default:
		return nil, model.ErrInvalidQuantity
	}

	// Step 4: change type
	changeType := model.ChangeIncrease
	if strings.Contains(lowered, "substitute") || strings.Contains(lowered, "replace") {
		changeType = model.ChangeSubstitute
	} else if toQty < fromQty {
		changeType = model.ChangeDecrease
	}

	return &InterpretedChange{
		ProductID:    productID,
		FromQuantity: fromQty,
		ToQuantity:   toQty,
		ChangeType:   changeType,
		Confidence:   confidence,
	}, nil
}

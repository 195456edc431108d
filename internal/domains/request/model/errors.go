package model

import "errors"

var (
	ErrRequestNotFound = errors.New("change request not found")
	ErrRequestTerminal = errors.New("change request already at terminal status")

	// Validation failures của interpreter, map ra failure code ở handler
	ErrInvalidDistributor = errors.New("distributor unknown to catalog")
	ErrInvalidProduct     = errors.New("no product keywords matched in request text")
	ErrInvalidQuantity    = errors.New("no quantity pattern matched in request text")
)

// FailureCode quy lỗi interpreter về code chuẩn ("" nếu không phải lỗi validate)
func FailureCode(err error) string {
	switch {
	case errors.Is(err, ErrInvalidDistributor):
		return "INVALID_DISTRIBUTOR"
	case errors.Is(err, ErrInvalidProduct):
		return "INVALID_PRODUCT"
	case errors.Is(err, ErrInvalidQuantity):
		return "INVALID_QUANTITY"
	default:
		return ""
	}
}

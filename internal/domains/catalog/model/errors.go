package model

import "errors"

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrDistributorNotFound = errors.New("distributor not found")
	ErrWarehouseNotFound   = errors.New("warehouse not found")
	ErrRouteNotFound       = errors.New("route not found")
)

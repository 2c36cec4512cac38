package cart

import "errors"

var (
	ErrItemNotFound     = errors.New("cart: item not found")
	ErrInvalidThreshold = errors.New("cart: free shipping threshold cannot be negative")
	ErrInvalidFee       = errors.New("cart: shipping fee cannot be negative")
)

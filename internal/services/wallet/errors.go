package wallet

import "errors"

var (
	ErrInvalidInput = errors.New("invalid wallet data")
	ErrCacheMiss    = errors.New("wallet not cached")
)

package matching

import "errors"

// Errors returned by OrderBook and MarketManager operations.
var (
	ErrSymbolDuplicate  = errors.New("symbol duplicate")
	ErrSymbolNotFound   = errors.New("symbol not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrOrderTypeInvalid = errors.New("order type invalid")
)

package synth

import "github.com/ravibhatia/moldfeed/matching"

// EventRouter is the sink for generated orders.
type EventRouter interface {
	Route(order matching.Order)
}

// Recorder records every routed order in memory, for tests and offline
// analysis of the generator's statistical properties.
type Recorder struct {
	Orders []matching.Order
}

// Route appends order to Orders.
func (r *Recorder) Route(order matching.Order) {
	r.Orders = append(r.Orders, order)
}

// LOBRouter feeds generated orders directly into a live order book.
type LOBRouter struct {
	Book *matching.OrderBook
}

// NewLOBRouter creates a router feeding into book.
func NewLOBRouter(book *matching.OrderBook) *LOBRouter {
	return &LOBRouter{Book: book}
}

// Route submits order to the order book, discarding any trades; callers
// that need trade notifications should observe them through the book's
// MarketHandler instead.
func (r *LOBRouter) Route(order matching.Order) {
	r.Book.Process(order)
}

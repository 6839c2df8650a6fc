// Package matching implements a price-time priority limit order book with
// lazy cancellation: cancelling an order flips a status flag rather than
// removing its id from the price level's FIFO queue, and stale entries are
// pruned opportunistically the next time a level is observed.
package matching

import "fmt"

// Side is the side of an order or a resting price level.
type Side uint8

const (
	// Bid is the buy side.
	Bid Side = iota
	// Ask is the sell side.
	Ask
)

// String returns the string representation of a Side.
func (s Side) String() string {
	switch s {
	case Bid:
		return "BID"
	case Ask:
		return "ASK"
	default:
		return "UNKNOWN"
	}
}

// Kind is the kind of an incoming Order.
type Kind uint8

const (
	// KindLimit rests on the book at Price for any unmatched quantity.
	KindLimit Kind = iota
	// KindMarket matches immediately ignoring price, discarding any residual.
	KindMarket
	// KindCancel marks the order named by ID as cancelled.
	KindCancel
	// KindUpdate cancels OldID and, if that succeeded, submits a new limit
	// order with this Order's ID, Qty, and Price.
	KindUpdate
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case KindLimit:
		return "LIMIT"
	case KindMarket:
		return "MARKET"
	case KindCancel:
		return "CANCEL"
	case KindUpdate:
		return "UPDATE"
	default:
		return "UNKNOWN"
	}
}

// Order is an incoming instruction to the order book. ID names the order
// being created (Limit, Market, Update) or cancelled (Cancel). Qty applies
// to Limit, Market, and Update; Price applies to Limit and Update; OldID
// applies only to Update, naming the resting order being replaced.
type Order struct {
	ID        uint64
	Side      Side
	Timestamp uint64
	Kind      Kind
	Qty       uint64
	Price     uint64
	OldID     uint64
}

// String returns the string representation of an Order.
func (o Order) String() string {
	return fmt.Sprintf("Order(ID=%d, Side=%s, Kind=%s, Qty=%d, Price=%d)", o.ID, o.Side, o.Kind, o.Qty, o.Price)
}

// Status is the lifecycle state of a resting limit order.
type Status uint8

const (
	// Active orders are eligible to match.
	Active Status = iota
	// Cancelled orders remain in their price level's queue until pruned,
	// but are never matched against.
	Cancelled
)

// RestingOrder is a limit order that has been accepted into the book and
// is awaiting a match, in full or in part.
type RestingOrder struct {
	ID     uint64
	Side   Side
	Status Status
	Qty    uint64
	Price  uint64
}

// String returns the string representation of a RestingOrder.
func (r RestingOrder) String() string {
	return fmt.Sprintf("RestingOrder(ID=%d, Side=%s, Status=%d, Qty=%d, Price=%d)", r.ID, r.Side, r.Status, r.Qty, r.Price)
}

// Trade reports one execution. Price is always the resting (maker) order's
// price.
type Trade struct {
	MakerOrderID uint64
	TakerOrderID uint64
	Price        uint64
	Quantity     uint64
	Timestamp    uint64
}

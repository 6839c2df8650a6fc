package matching

// OrderBook is a single symbol's limit order book: a price-time priority
// match engine with lazy cancellation. Orders are tracked by id in a flat
// map; bids and asks are separate AVL trees of price levels, each an
// insertion-ordered FIFO queue of resting order ids.
//
// Not thread-safe; callers serialize access to a given OrderBook.
type OrderBook struct {
	symbol  Symbol
	handler MarketHandler

	orders map[uint64]*RestingOrder
	bids   *AVLTree
	asks   *AVLTree
}

// NewOrderBook creates an empty order book for symbol, reporting events to
// handler.
func NewOrderBook(symbol Symbol, handler MarketHandler) *OrderBook {
	if handler == nil {
		handler = &DefaultMarketHandler{}
	}
	return &OrderBook{
		symbol:  symbol,
		handler: handler,
		orders:  make(map[uint64]*RestingOrder),
		bids:    NewAVLTree(true),
		asks:    NewAVLTree(false),
	}
}

// Symbol returns the symbol this book matches orders for.
func (b *OrderBook) Symbol() Symbol { return b.symbol }

// treeFor returns the side's tree: bids for Bid, asks for Ask.
func (b *OrderBook) treeFor(side Side) *AVLTree {
	if side == Bid {
		return b.bids
	}
	return b.asks
}

// oppositeTree returns the tree on the other side of side.
func (b *OrderBook) oppositeTree(side Side) *AVLTree {
	if side == Bid {
		return b.asks
	}
	return b.bids
}

// BestBid prunes lazily cancelled bid levels and returns the highest price
// with at least one active, non-zero-qty resting order, or false if none.
func (b *OrderBook) BestBid() (uint64, bool) {
	return b.bestPrice(b.bids)
}

// BestAsk prunes lazily cancelled ask levels and returns the lowest price
// with at least one active, non-zero-qty resting order, or false if none.
func (b *OrderBook) BestAsk() (uint64, bool) {
	return b.bestPrice(b.asks)
}

// bestPrice walks tree.First() forward (the tree's own ordering already
// puts the best price first, descending for bids and ascending for asks),
// pruning each level and removing any left fully empty, stopping at the
// first level with a surviving front order.
func (b *OrderBook) bestPrice(tree *AVLTree) (uint64, bool) {
	node := tree.First()
	for node != nil {
		next := tree.Next(node)
		if _, ok := node.Prune(b.orders); ok {
			return node.Price, true
		}
		tree.Remove(node)
		ReleaseLevelNode(node)
		node = next
	}
	return 0, false
}

// Process dispatches order by its Kind and returns any trades the
// operation produced. Trades are also reported through the handler's
// OnTrade hook as they execute.
func (b *OrderBook) Process(order Order) ([]Trade, error) {
	switch order.Kind {
	case KindLimit:
		return b.processLimit(order), nil
	case KindMarket:
		return b.processMarket(order), nil
	case KindCancel:
		return nil, b.Cancel(order.ID)
	case KindUpdate:
		return b.Update(order)
	default:
		return nil, ErrOrderTypeInvalid
	}
}

func (b *OrderBook) processLimit(order Order) []Trade {
	trades := b.match(order.Side, order.Price, true, &order.Qty, order.ID, order.Timestamp)
	if order.Qty == 0 {
		return trades
	}

	resting := &RestingOrder{ID: order.ID, Side: order.Side, Status: Active, Qty: order.Qty, Price: order.Price}
	b.orders[order.ID] = resting

	tree := b.treeFor(order.Side)
	level := tree.Find(order.Price)
	if level == nil {
		level = AcquireLevelNode(order.Price)
		tree.Insert(level)
	}
	level.Push(*resting)

	b.handler.OnAddOrder(order)
	return trades
}

func (b *OrderBook) processMarket(order Order) []Trade {
	qty := order.Qty
	return b.match(order.Side, 0, false, &qty, order.ID, order.Timestamp)
}

// Cancel lazily cancels the resting order named by id: it flips the
// status flag and leaves the id in its level's FIFO queue for the next
// prune. Returns ErrOrderNotFound if id does not name a resting order.
func (b *OrderBook) Cancel(id uint64) error {
	resting, ok := b.orders[id]
	if !ok {
		return ErrOrderNotFound
	}
	resting.Status = Cancelled
	b.handler.OnDeleteOrder(Order{ID: id, Side: resting.Side, Kind: KindCancel})
	return nil
}

// Update cancels OldID and, if that succeeded, submits a new limit order
// carrying this Order's ID, Side, Qty, and Price. If OldID does not name a
// resting order, Update is a no-op and reports ErrOrderNotFound.
func (b *OrderBook) Update(order Order) ([]Trade, error) {
	if err := b.Cancel(order.OldID); err != nil {
		return nil, err
	}
	limit := order
	limit.Kind = KindLimit
	return b.processLimit(limit), nil
}

// match walks the opposite side's book best-first, testing the per-level
// stop condition on every level visited rather than pre-checking a cached
// best price: a level that no longer crosses stops the walk, but only
// after being examined, so the opposite book is always pruned up to that
// point regardless of whether this call produces any trade.
func (b *OrderBook) match(side Side, price uint64, limited bool, remaining *uint64, takerID uint64, timestamp uint64) []Trade {
	var trades []Trade
	tree := b.oppositeTree(side)

	node := tree.First()
	for node != nil && *remaining > 0 {
		if limited && !crosses(side, price, node.Price) {
			break
		}

		for *remaining > 0 {
			frontID, ok := node.Prune(b.orders)
			if !ok {
				break
			}
			resting := b.orders[frontID]

			volume := resting.Qty
			if *remaining < volume {
				volume = *remaining
			}
			resting.Qty -= volume
			node.TotalQty -= volume
			*remaining -= volume

			trade := Trade{
				MakerOrderID: resting.ID,
				TakerOrderID: takerID,
				Price:        resting.Price,
				Quantity:     volume,
				Timestamp:    timestamp,
			}
			trades = append(trades, trade)
			b.handler.OnTrade(trade)

			if resting.Qty == 0 {
				node.PopFront()
				delete(b.orders, resting.ID)
			}
		}

		next := tree.Next(node)
		if node.Empty() {
			tree.Remove(node)
			ReleaseLevelNode(node)
		}
		node = next
	}

	return trades
}

// crosses reports whether a resting order at restingPrice would trade
// against an incoming order of side at limitPrice.
func crosses(side Side, limitPrice, restingPrice uint64) bool {
	if side == Bid {
		return restingPrice <= limitPrice
	}
	return restingPrice >= limitPrice
}

package matching

import "testing"

func TestAddSymbolCreatesOrderBook(t *testing.T) {
	m := NewMarketManager()
	if err := m.AddSymbol(NewSymbol(1, "AAPL")); err != nil {
		t.Fatalf("AddSymbol failed: %v", err)
	}
	if m.GetOrderBook(1) == nil {
		t.Fatal("expected an order book for symbol 1")
	}
}

func TestAddSymbolDuplicateReturnsError(t *testing.T) {
	m := NewMarketManager()
	m.AddSymbol(NewSymbol(1, "AAPL"))
	if err := m.AddSymbol(NewSymbol(1, "AAPL")); err != ErrSymbolDuplicate {
		t.Errorf("expected ErrSymbolDuplicate, got %v", err)
	}
}

func TestDeleteSymbolRemovesOrderBook(t *testing.T) {
	m := NewMarketManager()
	m.AddSymbol(NewSymbol(1, "AAPL"))
	if err := m.DeleteSymbol(1); err != nil {
		t.Fatalf("DeleteSymbol failed: %v", err)
	}
	if m.GetOrderBook(1) != nil {
		t.Error("expected order book to be gone after DeleteSymbol")
	}
}

func TestDeleteSymbolNotFoundReturnsError(t *testing.T) {
	m := NewMarketManager()
	if err := m.DeleteSymbol(99); err != ErrSymbolNotFound {
		t.Errorf("expected ErrSymbolNotFound, got %v", err)
	}
}

func TestProcessRoutesToSymbolBook(t *testing.T) {
	m := NewMarketManager()
	m.AddSymbol(NewSymbol(1, "AAPL"))
	m.AddSymbol(NewSymbol(2, "MSFT"))

	m.Process(1, Order{ID: 1, Side: Bid, Kind: KindLimit, Qty: 5, Price: 100})
	m.Process(2, Order{ID: 2, Side: Bid, Kind: KindLimit, Qty: 5, Price: 200})

	bid1, _ := m.GetOrderBook(1).BestBid()
	bid2, _ := m.GetOrderBook(2).BestBid()
	if bid1 != 100 {
		t.Errorf("expected symbol 1 best bid 100, got %d", bid1)
	}
	if bid2 != 200 {
		t.Errorf("expected symbol 2 best bid 200, got %d", bid2)
	}
}

func TestProcessUnknownSymbolReturnsError(t *testing.T) {
	m := NewMarketManager()
	_, err := m.Process(42, Order{ID: 1, Side: Bid, Kind: KindLimit, Qty: 5, Price: 100})
	if err != ErrSymbolNotFound {
		t.Errorf("expected ErrSymbolNotFound, got %v", err)
	}
}

type recordingHandler struct {
	DefaultMarketHandler
	trades []Trade
}

func (h *recordingHandler) OnTrade(trade Trade) {
	h.trades = append(h.trades, trade)
}

func TestMarketManagerReportsTradesThroughHandler(t *testing.T) {
	h := &recordingHandler{}
	m := NewMarketManagerWithHandler(h)
	m.AddSymbol(NewSymbol(1, "AAPL"))

	m.Process(1, Order{ID: 1, Side: Bid, Kind: KindLimit, Qty: 5, Price: 100})
	m.Process(1, Order{ID: 2, Side: Ask, Kind: KindLimit, Qty: 5, Price: 100})

	if len(h.trades) != 1 {
		t.Fatalf("expected 1 trade reported to handler, got %d", len(h.trades))
	}
	if h.trades[0].MakerOrderID != 1 || h.trades[0].TakerOrderID != 2 {
		t.Errorf("expected maker=1 taker=2, got %+v", h.trades[0])
	}
}

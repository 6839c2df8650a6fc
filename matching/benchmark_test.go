package matching

import "testing"

func BenchmarkProcessLimitOrder(b *testing.B) {
	m := NewMarketManager()
	m.AddSymbol(NewSymbol(1, "AAPL"))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Process(1, Order{
			ID:    uint64(i + 1),
			Side:  Bid,
			Kind:  KindLimit,
			Qty:   100,
			Price: uint64(10000 + i%100),
		})
	}
}

func BenchmarkProcessLimitOrderWithMatching(b *testing.B) {
	m := NewMarketManager()
	m.AddSymbol(NewSymbol(1, "AAPL"))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Process(1, Order{ID: uint64(i*2 + 1), Side: Ask, Kind: KindLimit, Qty: 100, Price: 10000})
		m.Process(1, Order{ID: uint64(i*2 + 2), Side: Bid, Kind: KindLimit, Qty: 100, Price: 10000})
	}
}

func BenchmarkBestBidLookup(b *testing.B) {
	book := NewOrderBook(NewSymbol(1, "AAPL"), &DefaultMarketHandler{})
	for i := 0; i < 1000; i++ {
		book.Process(Order{ID: uint64(i + 1), Side: Bid, Kind: KindLimit, Qty: 100, Price: uint64(10000 + i)})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		book.BestBid()
	}
}

func BenchmarkAVLTreeInsert(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree := NewAVLTree(false)
		for j := 0; j < 100; j++ {
			tree.Insert(NewLevelNode(uint64(j * 10)))
		}
	}
}

func BenchmarkAVLTreeFind(b *testing.B) {
	tree := NewAVLTree(false)
	for i := 0; i < 1000; i++ {
		tree.Insert(NewLevelNode(uint64(i * 10)))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Find(uint64((i % 1000) * 10))
	}
}

func BenchmarkCancelOrder(b *testing.B) {
	book := NewOrderBook(NewSymbol(1, "AAPL"), &DefaultMarketHandler{})
	for i := 0; i < b.N; i++ {
		book.Process(Order{ID: uint64(i + 1), Side: Bid, Kind: KindLimit, Qty: 100, Price: uint64(10000 + i%100)})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		book.Cancel(uint64(i + 1))
	}
}

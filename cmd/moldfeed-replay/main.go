// Command moldfeed-replay reads a zstd capture file produced by
// moldfeed-consumer -capture and prints each decoded event, optionally
// replaying add-order events into a fresh matching engine order book to
// reconstruct its final state. Order-executed events are counted and
// printed but not applied to the book.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ravibhatia/moldfeed/capture"
	"github.com/ravibhatia/moldfeed/matching"
	"github.com/ravibhatia/moldfeed/wire"
)

func main() {
	var (
		path       = flag.String("file", "", "path to a capture file written by moldfeed-consumer -capture")
		replayBook = flag.Bool("rebuild-book", false, "replay add-order events into an order book and print its final best bid/ask")
		quiet      = flag.Bool("quiet", false, "suppress per-event output; only print the summary")
	)
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "usage: moldfeed-replay -file <capture-file> [-rebuild-book] [-quiet]")
		os.Exit(1)
	}

	replayer, err := capture.NewReplayer(*path)
	if err != nil {
		log.Fatalf("open capture file: %v", err)
	}
	defer replayer.Close()

	var book *matching.OrderBook
	if *replayBook {
		book = matching.NewOrderBook(matching.NewSymbol(1, "REPLAY"), &matching.DefaultMarketHandler{})
	}

	var addOrders, executions, benchmarks uint64
	for {
		ev, err := replayer.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Fatalf("reading capture: %v", err)
		}

		switch ev.Type {
		case wire.TypeAddOrder:
			addOrders++
			if !*quiet {
				fmt.Printf("AddOrder   ref=%d side=%c shares=%d price=%d\n",
					ev.AddOrder.OrderRef, ev.AddOrder.Side, ev.AddOrder.Shares, ev.AddOrder.Price)
			}
			if book != nil {
				side := matching.Bid
				if ev.AddOrder.Side == wire.SideSell {
					side = matching.Ask
				}
				book.Process(matching.Order{
					ID:        ev.AddOrder.OrderRef,
					Side:      side,
					Kind:      matching.KindLimit,
					Qty:       uint64(ev.AddOrder.Shares),
					Price:     uint64(ev.AddOrder.Price),
					Timestamp: ev.AddOrder.Timestamp,
				})
			}
		case wire.TypeOrderExecuted:
			executions++
			if !*quiet {
				fmt.Printf("Executed   ref=%d shares=%d match=%d\n",
					ev.OrderExecuted.OrderRef, ev.OrderExecuted.ExecutedShares, ev.OrderExecuted.MatchNumber)
			}
		case wire.TypeTestBenchmark:
			benchmarks++
			if !*quiet {
				fmt.Printf("Benchmark  timestamp=%d\n", ev.Benchmark.Timestamp)
			}
		}
	}

	fmt.Printf("replayed %d add orders, %d executions, %d benchmarks\n", addOrders, executions, benchmarks)
	if book != nil {
		if bid, ok := book.BestBid(); ok {
			fmt.Printf("best bid: %d\n", bid)
		} else {
			fmt.Println("best bid: none")
		}
		if ask, ok := book.BestAsk(); ok {
			fmt.Printf("best ask: %d\n", ask)
		} else {
			fmt.Println("best ask: none")
		}
	}
}

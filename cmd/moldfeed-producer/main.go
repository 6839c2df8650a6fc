// Command moldfeed-producer drives a single-symbol matching engine with a
// synthetic Poisson order flow and publishes every add-order and
// order-executed event as MoldUDP64 datagrams.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"net"
	"os"
	"time"

	"github.com/ravibhatia/moldfeed/config"
	"github.com/ravibhatia/moldfeed/engine"
	"github.com/ravibhatia/moldfeed/matching"
	"github.com/ravibhatia/moldfeed/synth"
	"github.com/ravibhatia/moldfeed/wire"
)

// wireHandler converts matching engine callbacks into wire payloads and
// hands them to the engine pipeline's raw-event ring via push.
type wireHandler struct {
	matching.DefaultMarketHandler
	stockLocate uint16
	stock       [8]byte
	push        func([]byte)
}

func (h *wireHandler) OnAddOrder(order matching.Order) {
	side := byte(wire.SideBuy)
	if order.Side == matching.Ask {
		side = wire.SideSell
	}
	msg := wire.AddOrder{
		StockLocate: h.stockLocate,
		Timestamp:   order.Timestamp,
		OrderRef:    order.ID,
		Side:        side,
		Shares:      uint32(order.Qty),
		Stock:       h.stock,
		Price:       uint32(order.Price),
	}
	h.push(msg.Encode(nil))
}

func (h *wireHandler) OnTrade(trade matching.Trade) {
	msg := wire.OrderExecuted{
		StockLocate:    h.stockLocate,
		Timestamp:      trade.Timestamp,
		OrderRef:       trade.MakerOrderID,
		ExecutedShares: uint32(trade.Quantity),
		MatchNumber:    trade.TakerOrderID,
	}
	h.push(msg.Encode(nil))
}

func main() {
	var (
		configPath   = flag.String("config", "", "path to YAML config file")
		stock        = flag.String("stock", "AAPL", "symbol name, padded/truncated to 8 bytes")
		eventRate    = flag.Float64("rate", 10000.0, "synthetic order events per second")
		priceMean    = flag.Float64("price-mean", 150.0, "mean price in dollars for the Gaussian generator")
		priceStddev  = flag.Float64("price-stddev", 2.0, "price standard deviation in dollars")
		durationFlag = flag.Duration("duration", 0, "stop after this long (0 = run until killed)")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	conn, err := net.ListenPacket("udp", cfg.Network.ProducerBindAddr)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	defer conn.Close()

	dest, err := net.ResolveUDPAddr("udp", cfg.Network.DestinationAddr)
	if err != nil {
		log.Fatalf("resolve destination: %v", err)
	}

	sup := engine.New(engine.Config{
		RingCapacity:    cfg.Ring.Capacity,
		MaxPacketBytes:  cfg.Publisher.MaxPacketBytes,
		FlushInterval:   cfg.Publisher.FlushInterval,
		SequencerCoreID: cfg.Affinity.SequencerCoreID,
		PublisherCoreID: cfg.Affinity.PublisherCoreID,
	}, conn, dest)

	var stockBytes [8]byte
	copy(stockBytes[:], *stock)

	handler := &wireHandler{
		stockLocate: 1,
		stock:       stockBytes,
		push:        sup.PushEvent,
	}
	book := matching.NewOrderBook(matching.NewSymbol(1, *stock), handler)

	rate := synth.NewPoissonRate(*eventRate)
	selector := synth.NewUniformSelector(0.5, 0.5, 0.1, 0.3, 0.1)
	generator := synth.NewGaussianGenerator(*priceMean, *priceStddev)
	router := synth.NewLOBRouter(book)
	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	source := synth.NewSource(rate, selector, generator, router, rng)

	sup.Start(engine.Config{
		SequencerCoreID: cfg.Affinity.SequencerCoreID,
		PublisherCoreID: cfg.Affinity.PublisherCoreID,
	})

	fmt.Fprintf(os.Stderr, "moldfeed-producer: publishing %s synthetic order flow at %.0f events/s to %s\n",
		*stock, *eventRate, cfg.Network.DestinationAddr)

	var deadline <-chan time.Time
	if *durationFlag > 0 {
		deadline = time.After(*durationFlag)
	}

	pacing := time.Duration(float64(time.Second) / *eventRate)

	for {
		select {
		case <-deadline:
			sup.Stop()
			return
		default:
			source.Next()
			if pacing > 0 {
				time.Sleep(pacing)
			}
		}
	}
}

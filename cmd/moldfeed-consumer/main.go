// Command moldfeed-consumer reads MoldUDP64 datagrams off a UDP socket,
// decodes the contained events, and prints a summary of event counts on
// shutdown. With
// -capture it also records every decoded event to a zstd capture file for
// later replay.
package main

import (
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/ravibhatia/moldfeed/capture"
	"github.com/ravibhatia/moldfeed/config"
	"github.com/ravibhatia/moldfeed/receiver"
	"github.com/ravibhatia/moldfeed/ring"
	"github.com/ravibhatia/moldfeed/wire"
)

func main() {
	var (
		configPath  = flag.String("config", "", "path to YAML config file")
		capturePath = flag.String("capture", "", "if set, record decoded events to this zstd capture file")
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

	conn, err := net.ListenPacket("udp", cfg.Network.ConsumerBindAddr)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	defer conn.Close()

	var recorder *capture.Recorder
	if *capturePath != "" {
		recorder, err = capture.NewRecorder(*capturePath)
		if err != nil {
			log.Fatalf("open capture file: %v", err)
		}
		defer recorder.Close()
	}

	output := ring.New[wire.Event](cfg.Ring.Capacity)
	recv := receiver.New(conn, output)

	go recv.Run()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	var addOrders, executions, benchmarks uint64
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			ev, ok := output.Pop()
			if !ok {
				select {
				case <-sigCh:
					return
				default:
				}
				continue
			}

			switch ev.Type {
			case wire.TypeAddOrder:
				addOrders++
			case wire.TypeOrderExecuted:
				executions++
			case wire.TypeTestBenchmark:
				benchmarks++
			}

			if recorder != nil {
				if err := recorder.Write(ev); err != nil {
					log.Fatalf("capture write: %v", err)
				}
			}
		}
	}()

	fmt.Fprintf(os.Stderr, "moldfeed-consumer: listening on %s\n", cfg.Network.ConsumerBindAddr)
	<-sigCh
	recv.Stop()
	<-done
	fmt.Fprintf(os.Stderr, "moldfeed-consumer: %d add orders, %d executions, %d benchmarks\n",
		addOrders, executions, benchmarks)
}

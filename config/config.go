// Package config defines configuration for the producer and consumer
// processes. Config is loaded from a YAML file, with overrides from
// MOLDFEED_* environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the top-level configuration, mapped directly onto the YAML file
// structure.
type Config struct {
	Network   NetworkConfig   `mapstructure:"network"`
	Publisher PublisherConfig `mapstructure:"publisher"`
	Ring      RingConfig      `mapstructure:"ring"`
	Affinity  AffinityConfig  `mapstructure:"affinity"`
}

// NetworkConfig holds the UDP bind/destination addresses and socket tuning.
type NetworkConfig struct {
	ProducerBindAddr   string `mapstructure:"producer_bind_addr"`
	DestinationAddr    string `mapstructure:"destination_addr"`
	ConsumerBindAddr   string `mapstructure:"consumer_bind_addr"`
	ReceiveBufferBytes int    `mapstructure:"receive_buffer_bytes"`
}

// PublisherConfig tunes datagram batching.
//
//   - FlushInterval: upper bound on publisher latency before a non-full
//     datagram is sent.
//   - MaxPacketBytes: hard upper bound per datagram, header included.
type PublisherConfig struct {
	FlushInterval  time.Duration `mapstructure:"flush_interval"`
	MaxPacketBytes int           `mapstructure:"max_packet_bytes"`
}

// RingConfig sizes the SPSC queues between pipeline stages. Capacity must be
// a power of two.
type RingConfig struct {
	Capacity int `mapstructure:"ring_capacity"`
}

// AffinityConfig names the CPU cores each pinned thread should run on. A
// negative value means "no pinning requested" for that role.
type AffinityConfig struct {
	SequencerCoreID int `mapstructure:"sequencer_core_id"`
	PublisherCoreID int `mapstructure:"publisher_core_id"`
}

// Default returns the documented defaults: 1400-byte datagrams, 500µs flush
// interval, 8192-deep rings, no CPU pinning, and the producer/consumer
// addresses used throughout local development and tests.
func Default() Config {
	return Config{
		Network: NetworkConfig{
			ProducerBindAddr:   "0.0.0.0:9000",
			DestinationAddr:    "127.0.0.1:8081",
			ConsumerBindAddr:   "127.0.0.1:8081",
			ReceiveBufferBytes: 1 << 20,
		},
		Publisher: PublisherConfig{
			FlushInterval:  500 * time.Microsecond,
			MaxPacketBytes: 1400,
		},
		Ring: RingConfig{
			Capacity: 8192,
		},
		Affinity: AffinityConfig{
			SequencerCoreID: -1,
			PublisherCoreID: -1,
		},
	}
}

// Load reads config from a YAML file, falling back to Default() values for
// anything the file omits, with MOLDFEED_* environment variables taking
// precedence over both.
func Load(path string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("MOLDFEED")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, cfg)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("network.producer_bind_addr", cfg.Network.ProducerBindAddr)
	v.SetDefault("network.destination_addr", cfg.Network.DestinationAddr)
	v.SetDefault("network.consumer_bind_addr", cfg.Network.ConsumerBindAddr)
	v.SetDefault("network.receive_buffer_bytes", cfg.Network.ReceiveBufferBytes)
	v.SetDefault("publisher.flush_interval", cfg.Publisher.FlushInterval)
	v.SetDefault("publisher.max_packet_bytes", cfg.Publisher.MaxPacketBytes)
	v.SetDefault("ring.ring_capacity", cfg.Ring.Capacity)
	v.SetDefault("affinity.sequencer_core_id", cfg.Affinity.SequencerCoreID)
	v.SetDefault("affinity.publisher_core_id", cfg.Affinity.PublisherCoreID)
}

// Validate checks invariants Load cannot enforce through unmarshalling
// alone.
func (c Config) Validate() error {
	if c.Ring.Capacity <= 0 || c.Ring.Capacity&(c.Ring.Capacity-1) != 0 {
		return fmt.Errorf("ring.ring_capacity must be a power of two, got %d", c.Ring.Capacity)
	}
	if c.Publisher.MaxPacketBytes <= 20 {
		return fmt.Errorf("publisher.max_packet_bytes must exceed the 20-byte header, got %d", c.Publisher.MaxPacketBytes)
	}
	if c.Publisher.FlushInterval <= 0 {
		return fmt.Errorf("publisher.flush_interval must be > 0")
	}
	return nil
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultMatchesDocumentedDefaults(t *testing.T) {
	cfg := Default()
	if cfg.Publisher.MaxPacketBytes != 1400 {
		t.Errorf("got MaxPacketBytes=%d, want 1400", cfg.Publisher.MaxPacketBytes)
	}
	if cfg.Publisher.FlushInterval != 500*time.Microsecond {
		t.Errorf("got FlushInterval=%v, want 500µs", cfg.Publisher.FlushInterval)
	}
	if cfg.Ring.Capacity != 8192 {
		t.Errorf("got Capacity=%d, want 8192", cfg.Ring.Capacity)
	}
	if cfg.Network.ProducerBindAddr != "0.0.0.0:9000" {
		t.Errorf("got ProducerBindAddr=%q, want 0.0.0.0:9000", cfg.Network.ProducerBindAddr)
	}
	if cfg.Network.DestinationAddr != "127.0.0.1:8081" {
		t.Errorf("got DestinationAddr=%q, want 127.0.0.1:8081", cfg.Network.DestinationAddr)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default() failed Validate(): %v", err)
	}
}

func TestValidateRejectsNonPowerOfTwoCapacity(t *testing.T) {
	cfg := Default()
	cfg.Ring.Capacity = 100
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for non-power-of-two ring capacity")
	}
}

func TestValidateRejectsTinyMaxPacket(t *testing.T) {
	cfg := Default()
	cfg.Publisher.MaxPacketBytes = 10
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for max_packet_bytes below header size")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := []byte("publisher:\n  max_packet_bytes: 1200\nring:\n  ring_capacity: 4096\n")
	if err := os.WriteFile(path, yaml, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Publisher.MaxPacketBytes != 1200 {
		t.Errorf("got MaxPacketBytes=%d, want 1200", cfg.Publisher.MaxPacketBytes)
	}
	if cfg.Ring.Capacity != 4096 {
		t.Errorf("got Capacity=%d, want 4096", cfg.Ring.Capacity)
	}
	// Untouched fields keep their default.
	if cfg.Network.DestinationAddr != "127.0.0.1:8081" {
		t.Errorf("got DestinationAddr=%q, want unchanged default", cfg.Network.DestinationAddr)
	}
}

package mongo

import (
	"context"
	"testing"
	"time"
)

func TestConfigWithDefaults(t *testing.T) {
	cfg := Config{URI: "mongodb://localhost:27017"}.withDefaults()
	if cfg.Timeout != defaultTimeout {
		t.Fatalf("expected default timeout %v, got %v", defaultTimeout, cfg.Timeout)
	}
	if cfg.Database != defaultDatabase {
		t.Fatalf("expected default database %q, got %q", defaultDatabase, cfg.Database)
	}

	cfg = Config{URI: "mongodb://localhost:27017", Database: "users_test", Timeout: time.Second}.withDefaults()
	if cfg.Database != "users_test" || cfg.Timeout != time.Second {
		t.Fatalf("explicit settings must be kept, got %+v", cfg)
	}
}

func TestConnect_Unreachable(t *testing.T) {
	client, db, err := Connect(context.Background(), Config{
		URI:     "mongodb://127.0.0.1:1",
		Timeout: 500 * time.Millisecond,
	})
	if err == nil {
		t.Fatalf("expected connection error")
	}
	if client != nil || db != nil {
		t.Fatalf("expected nil client and database on failure")
	}
}

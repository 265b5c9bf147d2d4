package redis

import (
	"context"
	"testing"
	"time"
)

func TestConnect_Unreachable(t *testing.T) {
	client, err := Connect(context.Background(), Config{
		Addr:    "127.0.0.1:1",
		Timeout: 500 * time.Millisecond,
	})
	if err == nil {
		t.Fatalf("expected connection error")
	}
	if client != nil {
		t.Fatalf("expected nil client on failure")
	}
}

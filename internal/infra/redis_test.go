package infra

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"

	"github.com/hsa-card/hsa_engine/internal/config"
	"github.com/hsa-card/hsa_engine/internal/logging"
)

func TestNewRedisClient(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	defer mr.Close()

	client, err := NewRedisClient(context.Background(), "redis://"+mr.Addr()+"/0")
	if err != nil {
		t.Fatalf("new redis client: %v", err)
	}
	defer client.Close()

	if _, err := NewRedisClient(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty url")
	}
	if _, err := NewRedisClient(context.Background(), "://bad"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestOpenWithoutDatabase(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	defer mr.Close()

	logger := logging.Discard()
	b, err := Open(context.Background(), config.Config{RedisURL: "redis://" + mr.Addr()}, logger)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer b.Close(logger)

	if b.DB != nil {
		t.Fatal("expected no database pool")
	}
	if b.Cache == nil {
		t.Fatal("expected redis client")
	}
}

package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	client, err := NewSQLiteCache(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("NewSQLiteCache failed: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestSQLiteCache_SetThenGet(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	if err := client.Set(ctx, "video:abc", []byte(`{"title":"Cat video"}`), time.Minute); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	data, err := client.Get(ctx, "video:abc")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(data) != `{"title":"Cat video"}` {
		t.Errorf("got %s", data)
	}
}

func TestSQLiteCache_ExpiredEntryIsMiss(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	if err := client.Set(ctx, "k", []byte("v"), time.Second); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	// Expiry granularity is one second
	time.Sleep(2100 * time.Millisecond)

	if _, err := client.Get(ctx, "k"); err == nil {
		t.Error("expired entry must read as a miss")
	}
}

func TestSQLiteCache_OverwriteReplacesValue(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	client.Set(ctx, "k", []byte("old"), time.Minute)
	client.Set(ctx, "k", []byte("new"), time.Minute)

	data, err := client.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(data) != "new" {
		t.Errorf("got %s, want new", data)
	}
}

func TestSQLiteCache_ZeroTTLNeverExpires(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	if err := client.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if _, err := client.Get(ctx, "k"); err != nil {
		t.Errorf("entry with zero TTL should persist: %v", err)
	}
}

func TestSQLiteCache_Delete(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	client.Set(ctx, "k", []byte("v"), time.Minute)
	if err := client.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := client.Get(ctx, "k"); err == nil {
		t.Error("deleted key still readable")
	}
	if err := client.Delete(ctx, "absent"); err != nil {
		t.Errorf("Delete of missing key returned error: %v", err)
	}
}

func TestSQLiteCache_EmptyKeyRejected(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	if err := client.Set(ctx, "", []byte("v"), time.Minute); err == nil {
		t.Error("Set with empty key should fail")
	}
	if _, err := client.Get(ctx, ""); err == nil {
		t.Error("Get with empty key should fail")
	}
}

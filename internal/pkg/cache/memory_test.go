package cache

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"
)

func TestMemoryGetSet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	if _, ok := m.Get(ctx, "missing"); ok {
		t.Error("empty cache should miss")
	}

	if err := m.Set(ctx, "k", []byte("v1"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok := m.Get(ctx, "k")
	if !ok || !bytes.Equal(got, []byte("v1")) {
		t.Errorf("Get = %q, %v; want v1, true", got, ok)
	}

	// Set 整体替换
	_ = m.Set(ctx, "k", []byte("v2"), time.Minute)
	got, _ = m.Get(ctx, "k")
	if !bytes.Equal(got, []byte("v2")) {
		t.Errorf("Get after replace = %q, want v2", got)
	}
}

func TestMemoryLazyEviction(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	current := time.Date(2025, 12, 25, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return current }

	_ = m.Set(ctx, "k", []byte("v"), 2*time.Minute)

	current = current.Add(time.Minute)
	if _, ok := m.Get(ctx, "k"); !ok {
		t.Fatal("entry should still be live within ttl")
	}

	current = current.Add(2 * time.Minute)
	if _, ok := m.Get(ctx, "k"); ok {
		t.Fatal("expired entry should miss")
	}

	// 过期条目应在首次访问时被删除
	m.mu.Lock()
	_, present := m.entries["k"]
	m.mu.Unlock()
	if present {
		t.Error("expired entry should have been deleted on access")
	}
}

func TestMemoryDeleteAndClear(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_ = m.Set(ctx, "a", []byte("1"), time.Minute)
	_ = m.Set(ctx, "b", []byte("2"), time.Minute)

	_ = m.Delete(ctx, "a")
	if _, ok := m.Get(ctx, "a"); ok {
		t.Error("deleted entry should miss")
	}

	_ = m.Clear(ctx)
	if _, ok := m.Get(ctx, "b"); ok {
		t.Error("cleared cache should miss")
	}
}

func TestMemoryConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				_ = m.Set(ctx, "shared", []byte("value"), time.Millisecond)
				if v, ok := m.Get(ctx, "shared"); ok && !bytes.Equal(v, []byte("value")) {
					t.Error("read a corrupted entry")
					return
				}
				_ = m.Delete(ctx, "shared")
			}
		}()
	}
	wg.Wait()
}

func TestKey(t *testing.T) {
	if got := Key("analytics", "series", "1", "all", "7days", "views"); got != "analytics:series:1:all:7days:views" {
		t.Errorf("Key = %q", got)
	}
}

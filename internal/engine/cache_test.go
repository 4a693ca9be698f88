package engine

import (
	"context"
	"testing"
	"time"
)

func TestCacheKey(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		k1 := CacheKey("llm", "system", "prompt")
		k2 := CacheKey("llm", "system", "prompt")
		if k1 != k2 {
			t.Errorf("CacheKey not deterministic: %q != %q", k1, k2)
		}
	})

	t.Run("different inputs differ", func(t *testing.T) {
		k1 := CacheKey("llm", "extract skills")
		k2 := CacheKey("llm", "match skills")
		if k1 == k2 {
			t.Errorf("different inputs produced same key: %q", k1)
		}
	})

	t.Run("has prefix", func(t *testing.T) {
		k := CacheKey("test")
		if k[:3] != "sm:" {
			t.Errorf("expected sm: prefix, got %q", k[:3])
		}
	})
}

func TestCacheGetSet(t *testing.T) {
	// L1 only, no Redis
	InitCache("", 1*time.Minute, 100, 5*time.Minute)

	ctx := context.Background()
	key := CacheKey("test", "round-trip")

	// Miss
	if _, ok := CacheGet(ctx, key); ok {
		t.Error("expected cache miss on empty cache")
	}

	CacheSet(ctx, key, []byte("hello"))

	got, ok := CacheGet(ctx, key)
	if !ok {
		t.Fatal("expected cache hit after set")
	}
	if string(got) != "hello" {
		t.Errorf("got %q, want %q", got, "hello")
	}
}

func TestCacheExpiry(t *testing.T) {
	InitCache("", 10*time.Millisecond, 100, 5*time.Minute)

	ctx := context.Background()
	key := CacheKey("test", "expiry")
	CacheSet(ctx, key, []byte("stale"))

	time.Sleep(20 * time.Millisecond)
	if _, ok := CacheGet(ctx, key); ok {
		t.Error("expected expired entry to miss")
	}
}

func TestCacheJSONRoundTrip(t *testing.T) {
	InitCache("", 1*time.Minute, 100, 5*time.Minute)

	type payload struct {
		Skill string  `json:"skill"`
		Score float64 `json:"score"`
	}

	ctx := context.Background()
	key := CacheKey("test", "json")

	if _, ok := CacheLoadJSON[payload](ctx, key); ok {
		t.Error("expected miss before store")
	}

	CacheStoreJSON(ctx, key, payload{Skill: "Python", Score: 4.5})

	got, ok := CacheLoadJSON[payload](ctx, key)
	if !ok {
		t.Fatal("expected hit after store")
	}
	if got.Skill != "Python" || got.Score != 4.5 {
		t.Errorf("got %+v", got)
	}
}

func TestCacheUninitialized(t *testing.T) {
	llmCache = nil

	ctx := context.Background()
	CacheSet(ctx, "k", []byte("v")) // must not panic
	if _, ok := CacheGet(ctx, "k"); ok {
		t.Error("uninitialized cache should always miss")
	}
}

package storage

import (
	"context"
	"errors"
	"log/slog"
	"testing"
)

// engineUnderTest builds each KVEngine implementation for the shared
// conformance tests.
func enginesUnderTest(t *testing.T) map[string]KVEngine {
	t.Helper()

	badgerCfg := DefaultKVConfig()
	badgerCfg.Dir = t.TempDir()
	badgerEngine, err := NewBadgerEngine(badgerCfg, slog.Default())
	if err != nil {
		t.Fatalf("NewBadgerEngine() error = %v", err)
	}

	return map[string]KVEngine{
		"memory": NewMemoryEngine(),
		"badger": badgerEngine,
	}
}

func TestEngineSetGetDelete(t *testing.T) {
	ctx := context.Background()

	for name, engine := range enginesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			defer engine.Close()

			key := []byte("iphone-rate")
			if _, err := engine.Get(ctx, key); !errors.Is(err, ErrKeyNotFound) {
				t.Errorf("Get(missing) error = %v, want ErrKeyNotFound", err)
			}

			if err := engine.Set(ctx, key, []byte("1200")); err != nil {
				t.Fatalf("Set() error = %v", err)
			}

			got, err := engine.Get(ctx, key)
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if string(got) != "1200" {
				t.Errorf("Get() = %q, want %q", got, "1200")
			}

			if err := engine.Set(ctx, key, []byte("1350")); err != nil {
				t.Fatalf("Set(overwrite) error = %v", err)
			}
			got, _ = engine.Get(ctx, key)
			if string(got) != "1350" {
				t.Errorf("Get() after overwrite = %q, want %q", got, "1350")
			}

			if err := engine.Delete(ctx, key); err != nil {
				t.Fatalf("Delete() error = %v", err)
			}
			if _, err := engine.Get(ctx, key); !errors.Is(err, ErrKeyNotFound) {
				t.Errorf("Get(deleted) error = %v, want ErrKeyNotFound", err)
			}
		})
	}
}

func TestEngineScanPrefix(t *testing.T) {
	ctx := context.Background()

	for name, engine := range enginesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			defer engine.Close()

			seed := map[string]string{
				"iphone-sales-v2": "[]",
				"iphone-clients":  "[]",
				"iphone-rate":     "1200",
				"other-key":       "x",
			}
			for k, v := range seed {
				if err := engine.Set(ctx, []byte(k), []byte(v)); err != nil {
					t.Fatalf("Set(%q) error = %v", k, err)
				}
			}

			found := make(map[string]string)
			err := engine.Scan(ctx, []byte("iphone-"), func(key, value []byte) bool {
				found[string(key)] = string(value)
				return true
			})
			if err != nil {
				t.Fatalf("Scan() error = %v", err)
			}

			if len(found) != 3 {
				t.Errorf("Scan matched %d keys, want 3: %v", len(found), found)
			}
			if _, ok := found["other-key"]; ok {
				t.Error("Scan should not match keys outside the prefix")
			}
		})
	}
}

func TestEngineStats(t *testing.T) {
	ctx := context.Background()

	for name, engine := range enginesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			defer engine.Close()

			if err := engine.Set(ctx, []byte("stats-key"), []byte("value")); err != nil {
				t.Fatalf("Set() error = %v", err)
			}

			stats, err := engine.Stats(ctx)
			if err != nil {
				t.Fatalf("Stats() error = %v", err)
			}
			if stats == nil {
				t.Fatal("Stats() returned nil")
			}
			// Badger cannot count keys cheaply and reports zero.
			if name == "memory" && stats.TotalKeys != 1 {
				t.Errorf("TotalKeys = %d, want 1", stats.TotalKeys)
			}
		})
	}
}

func TestMemoryEngineClosed(t *testing.T) {
	ctx := context.Background()
	engine := NewMemoryEngine()
	if err := engine.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if err := engine.Set(ctx, []byte("k"), []byte("v")); !errors.Is(err, ErrClosed) {
		t.Errorf("Set after close error = %v, want ErrClosed", err)
	}
	if _, err := engine.Get(ctx, []byte("k")); !errors.Is(err, ErrClosed) {
		t.Errorf("Get after close error = %v, want ErrClosed", err)
	}
}

func TestBadgerEnginePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	cfg := DefaultKVConfig()
	cfg.Dir = dir

	engine, err := NewBadgerEngine(cfg, slog.Default())
	if err != nil {
		t.Fatalf("NewBadgerEngine() error = %v", err)
	}
	if err := engine.Set(ctx, []byte("iphone-dark"), []byte("true")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := engine.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := NewBadgerEngine(cfg, slog.Default())
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Get(ctx, []byte("iphone-dark"))
	if err != nil {
		t.Fatalf("Get() after reopen error = %v", err)
	}
	if string(got) != "true" {
		t.Errorf("Get() after reopen = %q, want %q", got, "true")
	}
}

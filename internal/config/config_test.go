package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PEOPLE_ADDR", "PEOPLE_TABLE", "PROVIDER_URL", "SEED_BATCHES", "SEED_BATCH_SIZE"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Addr != ":8080" {
		t.Fatalf("unexpected addr %q", cfg.Addr)
	}
	if cfg.TableName != "people" {
		t.Fatalf("unexpected table %q", cfg.TableName)
	}
	if cfg.ProviderURL != "https://randomuser.me/api/" {
		t.Fatalf("unexpected provider url %q", cfg.ProviderURL)
	}
	if cfg.SeedBatches != 10 || cfg.SeedBatchSize != 100 {
		t.Fatalf("unexpected seed fan-out %dx%d", cfg.SeedBatches, cfg.SeedBatchSize)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PEOPLE_ADDR", ":9090")
	t.Setenv("PEOPLE_TABLE", "directory_people")
	t.Setenv("SEED_BATCHES", "2")
	t.Setenv("SEED_BATCH_SIZE", "50")

	cfg := Load()
	if cfg.Addr != ":9090" || cfg.TableName != "directory_people" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.SeedBatches != 2 || cfg.SeedBatchSize != 50 {
		t.Fatalf("seed overrides not applied: %dx%d", cfg.SeedBatches, cfg.SeedBatchSize)
	}
}

func TestLoadRejectsBadIntegers(t *testing.T) {
	t.Setenv("SEED_BATCHES", "not-a-number")
	t.Setenv("SEED_BATCH_SIZE", "-3")

	cfg := Load()
	if cfg.SeedBatches != 10 || cfg.SeedBatchSize != 100 {
		t.Fatalf("expected defaults for bad integers, got %dx%d", cfg.SeedBatches, cfg.SeedBatchSize)
	}
}

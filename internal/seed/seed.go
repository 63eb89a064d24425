package seed

import (
	"fmt"
	"log"

	"people-directory/internal/observability"
	"people-directory/internal/person"
)

// Fetcher mirrors the provider surface the seeder needs.
type Fetcher interface {
	Fetch(count int) ([]person.Person, error)
}

// Options controls the seeding fan-out. First boot inserts
// Batches * BatchSize records.
type Options struct {
	Batches   int
	BatchSize int
	Metrics   *observability.Metrics
}

// Bootstrap ensures the schema exists, then populates an empty store with
// Batches fetch+insert cycles. A non-empty store is left untouched so
// restarts never re-fetch. It runs once, synchronously, before the service
// accepts traffic; any failure propagates and aborts startup.
//
// If a batch fails partway through the loop, earlier batches stay persisted
// and the next boot sees a non-empty table, so it will not top the seed up.
func Bootstrap(repo person.Repository, fetcher Fetcher, opts Options) error {
	if opts.Batches <= 0 {
		opts.Batches = 10
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = 100
	}

	if err := repo.EnsureSchema(); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	count, err := repo.Count()
	if err != nil {
		return fmt.Errorf("count people: %w", err)
	}
	if count > 0 {
		return nil
	}

	for i := 0; i < opts.Batches; i++ {
		people, err := fetcher.Fetch(opts.BatchSize)
		if err != nil {
			return fmt.Errorf("seed batch %d/%d: %w", i+1, opts.Batches, err)
		}
		inserted, err := repo.InsertBatch(people)
		if err != nil {
			return fmt.Errorf("seed batch %d/%d: %w", i+1, opts.Batches, err)
		}
		if m := opts.Metrics; m != nil {
			m.SeededRecords.Add(float64(len(inserted)))
		}
	}

	log.Printf("seeded %d people", opts.Batches*opts.BatchSize)
	return nil
}

package seed

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"people-directory/internal/person"
)

type countingFetcher struct {
	calls  int
	failAt int // 1-based call number that fails, 0 means never
}

func (f *countingFetcher) Fetch(count int) ([]person.Person, error) {
	f.calls++
	if f.failAt > 0 && f.calls == f.failAt {
		return nil, errors.New("provider down")
	}
	people := make([]person.Person, 0, count)
	for i := 0; i < count; i++ {
		people = append(people, person.Person{
			Gender:    "female",
			FirstName: fmt.Sprintf("Batch%dPerson%d", f.calls, i),
			LastName:  "Seeded",
			Phone:     "555-0100",
			Email:     fmt.Sprintf("b%dp%d@example.com", f.calls, i),
			Location:  "London, UK",
			Picture:   "https://example.com/t.jpg",
		})
	}
	return people, nil
}

func TestBootstrapSeedsEmptyStore(t *testing.T) {
	repo := person.NewInMemoryRepository(nil)
	fetcher := &countingFetcher{}

	if err := Bootstrap(repo, fetcher, Options{Batches: 10, BatchSize: 100}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fetcher.calls != 10 {
		t.Fatalf("expected 10 fetches, got %d", fetcher.calls)
	}
	count, _ := repo.Count()
	if count != 1000 {
		t.Fatalf("expected 1000 seeded people, got %d", count)
	}
}

func TestBootstrapSkipsNonEmptyStore(t *testing.T) {
	repo := person.NewInMemoryRepository([]person.Person{{
		Gender: "male", FirstName: "Only", LastName: "One",
		Phone: "555-0199", Email: "one@example.com",
		Location: "Oslo, Norway", Picture: "https://example.com/o.jpg",
	}})
	fetcher := &countingFetcher{}

	if err := Bootstrap(repo, fetcher, Options{Batches: 10, BatchSize: 100}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fetcher.calls != 0 {
		t.Fatalf("expected zero fetches on a non-empty store, got %d", fetcher.calls)
	}
	count, _ := repo.Count()
	if count != 1 {
		t.Fatalf("expected store untouched, got %d records", count)
	}
}

func TestBootstrapPropagatesBatchFailure(t *testing.T) {
	repo := person.NewInMemoryRepository(nil)
	fetcher := &countingFetcher{failAt: 3}

	err := Bootstrap(repo, fetcher, Options{Batches: 5, BatchSize: 10})
	if err == nil {
		t.Fatal("expected batch failure to propagate")
	}
	if !strings.Contains(err.Error(), "seed batch 3/5") {
		t.Fatalf("expected failing batch in error, got %v", err)
	}
	// earlier batches stay persisted; the failure is a startup error, not a
	// silent half-seed
	count, _ := repo.Count()
	if count != 20 {
		t.Fatalf("expected 20 records from the first two batches, got %d", count)
	}
}

func TestBootstrapDefaultsFanOut(t *testing.T) {
	repo := person.NewInMemoryRepository(nil)
	fetcher := &countingFetcher{}

	if err := Bootstrap(repo, fetcher, Options{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fetcher.calls != 10 {
		t.Fatalf("expected default 10 batches, got %d", fetcher.calls)
	}
	count, _ := repo.Count()
	if count != 1000 {
		t.Fatalf("expected default 10x100 seed, got %d", count)
	}
}

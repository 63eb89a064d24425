package person

import (
	"errors"
	"math/rand"
)

var (
	ErrNotFound     = errors.New("person not found")
	ErrInvalidCount = errors.New("count must be a positive integer")

	// ErrUpstreamData marks a provider payload that is missing required
	// fields; it is wrapped with record context at the point of failure.
	ErrUpstreamData = errors.New("provider returned malformed person data")
)

type Repository interface {
	EnsureSchema() error
	InsertBatch(people []Person) ([]Person, error)
	Count() (int, error)
	ListPage(limit, offset int) ([]Person, error)
	GetByID(id int) (Person, error)
	Random() (Person, error)
}

// InMemoryRepository for tests
type InMemoryRepository struct {
	people []Person
	nextID int
}

func NewInMemoryRepository(seed []Person) *InMemoryRepository {
	r := &InMemoryRepository{nextID: 1}
	if len(seed) > 0 {
		r.InsertBatch(seed)
	}
	return r
}

func (r *InMemoryRepository) EnsureSchema() error { return nil }

func (r *InMemoryRepository) InsertBatch(people []Person) ([]Person, error) {
	out := make([]Person, 0, len(people))
	for _, p := range people {
		p.ID = r.nextID
		r.nextID++
		r.people = append(r.people, p)
		out = append(out, p)
	}
	return out, nil
}

func (r *InMemoryRepository) Count() (int, error) {
	return len(r.people), nil
}

func (r *InMemoryRepository) ListPage(limit, offset int) ([]Person, error) {
	if limit <= 0 || offset < 0 || offset >= len(r.people) {
		return []Person{}, nil
	}
	end := offset + limit
	if end > len(r.people) {
		end = len(r.people)
	}
	out := make([]Person, end-offset)
	copy(out, r.people[offset:end])
	return out, nil
}

func (r *InMemoryRepository) GetByID(id int) (Person, error) {
	for _, p := range r.people {
		if p.ID == id {
			return p, nil
		}
	}
	return Person{}, ErrNotFound
}

func (r *InMemoryRepository) Random() (Person, error) {
	if len(r.people) == 0 {
		return Person{}, ErrNotFound
	}
	return r.GetByID(rand.Intn(len(r.people)) + 1)
}

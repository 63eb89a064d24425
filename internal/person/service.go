package person

import "sort"

// DefaultPageLimit is the page size used when a client omits limit.
const DefaultPageLimit = 10

// Fetcher supplies new records from the external provider.
type Fetcher interface {
	Fetch(count int) ([]Person, error)
}

// Service adapts store results to page-based clients.

type Service struct {
	repo    Repository
	fetcher Fetcher
}

func NewService(repo Repository, fetcher Fetcher) *Service {
	return &Service{repo: repo, fetcher: fetcher}
}

// Page is one bounded, offset slice of the record sequence together with the
// offsets a client needs for Previous/Next navigation.
type Page struct {
	People     []Person
	Limit      int
	Offset     int
	PrevOffset int
	NextOffset int
}

// Page lists records at limit/offset. Paging past the end yields an empty
// page, not an error; NextOffset has no upper bound.
func (s *Service) Page(limit, offset int) (Page, error) {
	if limit < 0 {
		limit = DefaultPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	people, err := s.repo.ListPage(limit, offset)
	if err != nil {
		return Page{}, err
	}
	prev := offset - limit
	if prev < 0 {
		prev = 0
	}
	return Page{
		People:     people,
		Limit:      limit,
		Offset:     offset,
		PrevOffset: prev,
		NextOffset: offset + limit,
	}, nil
}

func (s *Service) Detail(id int) (Person, error) {
	if id <= 0 {
		return Person{}, ErrNotFound
	}
	return s.repo.GetByID(id)
}

func (s *Service) Random() (Person, error) {
	return s.repo.Random()
}

// LoadAndList fetches count new records from the provider, persists them, and
// returns them with their assigned ids sorted by (first name, last name).
// Count only has to be positive; the 1-1000 range on the HTML form is a
// presentation hint, not a service invariant.
func (s *Service) LoadAndList(count int) ([]Person, error) {
	if count <= 0 {
		return nil, ErrInvalidCount
	}
	fetched, err := s.fetcher.Fetch(count)
	if err != nil {
		return nil, err
	}
	inserted, err := s.repo.InsertBatch(fetched)
	if err != nil {
		return nil, err
	}
	sort.Slice(inserted, func(i, j int) bool {
		if inserted[i].FirstName != inserted[j].FirstName {
			return inserted[i].FirstName < inserted[j].FirstName
		}
		return inserted[i].LastName < inserted[j].LastName
	})
	return inserted, nil
}

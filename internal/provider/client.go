package provider

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"people-directory/internal/observability"
	"people-directory/internal/person"
)

// Config holds the provider endpoint settings. Empty fields are defaulted in
// NewClient.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Metrics    *observability.Metrics
}

// Client fetches synthetic person records from the randomuser.me API. Calls
// are synchronous and never retried; a failure propagates to the caller.
type Client struct {
	cfg Config
}

func NewClient(cfg Config) *Client {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = "https://randomuser.me/api/"
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{cfg: cfg}
}

type apiResponse struct {
	Results []apiResult `json:"results"`
}

type apiResult struct {
	Gender string `json:"gender"`
	Name   struct {
		First string `json:"first"`
		Last  string `json:"last"`
	} `json:"name"`
	Location struct {
		City    string `json:"city"`
		Country string `json:"country"`
	} `json:"location"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Picture struct {
		Thumbnail string `json:"thumbnail"`
	} `json:"picture"`
}

// Fetch issues one request for exactly count results and maps each into a
// Person without an id. A short result set or a record with missing fields
// fails the whole call; nothing is fabricated.
func (c *Client) Fetch(count int) ([]person.Person, error) {
	if count <= 0 {
		return nil, person.ErrInvalidCount
	}

	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse provider url: %w", err)
	}
	q := u.Query()
	q.Set("results", strconv.Itoa(count))
	u.RawQuery = q.Encode()

	if m := c.cfg.Metrics; m != nil {
		m.ProviderFetches.Inc()
	}

	resp, err := c.cfg.HTTPClient.Get(u.String())
	if err != nil {
		return nil, c.fail(fmt.Errorf("fetch people: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.fail(fmt.Errorf("fetch people: provider returned status %d", resp.StatusCode))
	}

	var payload apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, c.fail(fmt.Errorf("decode provider response: %w", err))
	}
	if len(payload.Results) != count {
		return nil, c.fail(fmt.Errorf("provider returned %d results, want %d: %w", len(payload.Results), count, person.ErrUpstreamData))
	}

	people := make([]person.Person, 0, count)
	for i, r := range payload.Results {
		p, err := mapResult(r)
		if err != nil {
			return nil, c.fail(fmt.Errorf("result %d: %w", i, err))
		}
		people = append(people, p)
	}
	return people, nil
}

func (c *Client) fail(err error) error {
	if m := c.cfg.Metrics; m != nil {
		m.ProviderErrors.Inc()
	}
	return err
}

func mapResult(r apiResult) (person.Person, error) {
	switch {
	case r.Gender == "":
		return person.Person{}, missingField("gender")
	case r.Name.First == "":
		return person.Person{}, missingField("name.first")
	case r.Name.Last == "":
		return person.Person{}, missingField("name.last")
	case r.Phone == "":
		return person.Person{}, missingField("phone")
	case r.Email == "":
		return person.Person{}, missingField("email")
	case r.Location.City == "":
		return person.Person{}, missingField("location.city")
	case r.Location.Country == "":
		return person.Person{}, missingField("location.country")
	case r.Picture.Thumbnail == "":
		return person.Person{}, missingField("picture.thumbnail")
	}

	return person.Person{
		Gender:    r.Gender,
		FirstName: r.Name.First,
		LastName:  r.Name.Last,
		Phone:     r.Phone,
		Email:     r.Email,
		Location:  r.Location.City + ", " + r.Location.Country,
		Picture:   r.Picture.Thumbnail,
	}, nil
}

func missingField(name string) error {
	return fmt.Errorf("missing %s: %w", name, person.ErrUpstreamData)
}

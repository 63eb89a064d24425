package person

// Person is one persisted directory entry. The store assigns ID at insert
// time; every other field is immutable afterwards and rows are never deleted.
// Location is pre-flattened to "{city}, {country}" at ingestion — the
// original split is not retained.
type Person struct {
	ID        int    `json:"id"`
	Gender    string `json:"gender"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Location  string `json:"location"`
	Picture   string `json:"picture"`
}

package person

import (
	"database/sql"
	"fmt"
	"math/rand"
)

// DefaultTable is used when the deployment does not override the table name.
const DefaultTable = "people"

// PostgresRepository stores people in a single append-only table.
// Table layout:
//   id serial primary key,
//   gender text,
//   first_name text,
//   last_name text,
//   phone text,
//   email text,
//   location text,
//   picture text

type PostgresRepository struct {
	db    *sql.DB
	table string

	createQuery string
	insertQuery string
	countQuery  string
	listQuery   string
	getQuery    string
}

type rowScanner interface {
	Scan(dest ...any) error
}

// NewPostgresRepository builds a repository over the given table. The table
// name is constructor input rather than ambient state so deployments can run
// side-by-side tables against one database.
func NewPostgresRepository(db *sql.DB, table string) *PostgresRepository {
	if table == "" {
		table = DefaultTable
	}
	r := &PostgresRepository{db: db, table: table}
	r.createQuery = fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id SERIAL PRIMARY KEY,
		gender TEXT,
		first_name TEXT,
		last_name TEXT,
		phone TEXT,
		email TEXT,
		location TEXT,
		picture TEXT
	)`, table)
	r.insertQuery = fmt.Sprintf(`
		INSERT INTO %s (gender, first_name, last_name, phone, email, location, picture)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id
	`, table)
	r.countQuery = fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table)
	r.listQuery = fmt.Sprintf(`
		SELECT id, gender, first_name, last_name, phone, email, location, picture
		FROM %s
		ORDER BY id
		LIMIT $1 OFFSET $2
	`, table)
	r.getQuery = fmt.Sprintf(`
		SELECT id, gender, first_name, last_name, phone, email, location, picture
		FROM %s
		WHERE id = $1
	`, table)
	return r
}

func (r *PostgresRepository) EnsureSchema() error {
	_, err := r.db.Exec(r.createQuery)
	return err
}

// InsertBatch persists the records in one transaction so a mid-batch failure
// is reported instead of leaving a silent partial write. Returned records
// carry their freshly assigned ids in insertion order.
func (r *PostgresRepository) InsertBatch(people []Person) ([]Person, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, err
	}
	out := make([]Person, 0, len(people))
	for _, p := range people {
		if err := tx.QueryRow(r.insertQuery, p.Gender, p.FirstName, p.LastName, p.Phone, p.Email, p.Location, p.Picture).Scan(&p.ID); err != nil {
			tx.Rollback()
			return nil, err
		}
		out = append(out, p)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow(r.countQuery).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresRepository) ListPage(limit, offset int) ([]Person, error) {
	rows, err := r.db.Query(r.listQuery, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Person, 0)
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Person, error) {
	p, err := scanPerson(r.db.QueryRow(r.getQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return Person{}, ErrNotFound
		}
		return Person{}, err
	}
	return p, nil
}

// Random draws an id uniformly from [1, count] and returns that row. Ids stay
// densely packed in that range because inserts are serial and no delete
// operation exists, so the draw is uniform over the actual rows.
func (r *PostgresRepository) Random() (Person, error) {
	count, err := r.Count()
	if err != nil {
		return Person{}, err
	}
	if count == 0 {
		return Person{}, ErrNotFound
	}
	return r.GetByID(rand.Intn(count) + 1)
}

func scanPerson(scanner rowScanner) (Person, error) {
	var p Person
	if err := scanner.Scan(
		&p.ID,
		&p.Gender,
		&p.FirstName,
		&p.LastName,
		&p.Phone,
		&p.Email,
		&p.Location,
		&p.Picture,
	); err != nil {
		return Person{}, err
	}
	return p, nil
}

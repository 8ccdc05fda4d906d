// Package repo holds the Postgres-backed user store: accounts and the
// verification runs a user chooses to keep.
package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

type Profile struct {
	ID        int       `json:"id"`
	Login     string    `json:"login"`
	Email     string    `json:"email"`
	Company   string    `json:"company,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Run is one saved verification: the endpoint it came from and the raw
// result payload, stored as JSON so the schema never chases the engines.
type Run struct {
	ID        int             `json:"id"`
	Kind      string          `json:"kind"`
	Section   string          `json:"section"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, passwordHash string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)
	GetProfileByID(ctx context.Context, id int) (Profile, error)
	UpdateProfile(ctx context.Context, id int, login, company string) error

	SaveRun(ctx context.Context, userID int, kind, section string, payload json.RawMessage) (int, error)
	ListRuns(ctx context.Context, userID int, limit int) ([]Run, error)
}

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserDB(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, login, email, passwordHash string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, passwordHash).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string
	query := "SELECT id, password FROM users WHERE login=$1"
	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresUserRepository) GetProfileByID(ctx context.Context, id int) (Profile, error) {
	var p Profile
	var company sql.NullString
	query := "SELECT id, login, email, company, created_at FROM users WHERE id=$1"
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Login, &p.Email, &company, &p.CreatedAt)
	if err != nil {
		return Profile{}, err
	}
	p.Company = company.String
	return p, nil
}

func (r *PostgresUserRepository) UpdateProfile(ctx context.Context, id int, login, company string) error {
	query := "UPDATE users SET login=$2, company=$3 WHERE id=$1"
	_, err := r.db.ExecContext(ctx, query, id, login, company)
	return err
}

func (r *PostgresUserRepository) SaveRun(ctx context.Context, userID int, kind, section string, payload json.RawMessage) (int, error) {
	var id int
	query := "INSERT INTO runs (user_id, kind, section, payload) VALUES ($1, $2, $3, $4) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, userID, kind, section, payload).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) ListRuns(ctx context.Context, userID int, limit int) ([]Run, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	query := "SELECT id, kind, section, payload, created_at FROM runs WHERE user_id=$1 ORDER BY created_at DESC LIMIT $2"
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.Kind, &run.Section, &run.Payload, &run.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

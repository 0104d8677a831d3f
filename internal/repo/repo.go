package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

var ErrNotFound = errors.New("not found")

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetBylogin(ctx context.Context, login string) (int, string, error)
	SaveEvaluation(ctx context.Context, userID int, input, output []byte, totalCost float64) (string, error)
	ListEvaluations(ctx context.Context, userID, limit int) ([]EvaluationSummary, error)
	GetEvaluation(ctx context.Context, userID int, id string) (Evaluation, error)
}

type EvaluationSummary struct {
	ID          string  `db:"id" json:"id"`
	TotalCost   float64 `db:"total_cost" json:"total_cost"`
	CreatedUnix int64   `db:"created_at" json:"-"`
}

func (e EvaluationSummary) CreatedAt() time.Time { return time.UnixMilli(e.CreatedUnix).UTC() }

// Evaluation holds the stored input and output JSON documents verbatim.
type Evaluation struct {
	EvaluationSummary
	UserID int    `db:"user_id"`
	Input  string `db:"input"`
	Output string `db:"output"`
}

type SQLRepository struct {
	db     *sqlx.DB
	driver string
}

var schemas = map[string]string{
	"postgres": `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		login TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL,
		password TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS evaluations (
		id TEXT PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(id),
		input TEXT NOT NULL,
		output TEXT NOT NULL,
		total_cost DOUBLE PRECISION NOT NULL,
		created_at BIGINT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS evaluations_user_created ON evaluations (user_id, created_at);`,
	"sqlite": `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		login TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL,
		password TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS evaluations (
		id TEXT PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(id),
		input TEXT NOT NULL,
		output TEXT NOT NULL,
		total_cost REAL NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS evaluations_user_created ON evaluations (user_id, created_at);`,
}

// PostgresDSN applies the sslmode default the deployment relies on.
func PostgresDSN(connStr string) string {
	if connStr == "" {
		connStr = "user=postgres dbname=postgres password=password sslmode=disable"
	}
	if !strings.Contains(connStr, "sslmode=") {
		if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
			sep := "?"
			if strings.Contains(connStr, "?") {
				sep = "&"
			}
			connStr = connStr + sep + "sslmode=require"
		} else {
			connStr = connStr + " sslmode=require"
		}
	}
	return connStr
}

// Open connects to "postgres" or "sqlite" and creates the schema.
func Open(ctx context.Context, driver, dsn string) (*SQLRepository, error) {
	schema, ok := schemas[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	if driver == "postgres" {
		dsn = PostgresDSN(dsn)
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if driver == "sqlite" {
		// One connection keeps ":memory:" databases alive and serialises writers.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &SQLRepository{db: db, driver: driver}, nil
}

func (r *SQLRepository) Close() error {
	return r.db.Close()
}

func (r *SQLRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := r.db.Rebind("INSERT INTO users (login, email, password) VALUES (?, ?, ?) RETURNING id")
	err := r.db.QueryRowxContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

// GetBylogin returns a zero id and no error for an unknown login.
func (r *SQLRepository) GetBylogin(ctx context.Context, login string) (int, string, error) {
	var row struct {
		ID       int    `db:"id"`
		Password string `db:"password"`
	}
	query := r.db.Rebind("SELECT id, password FROM users WHERE login = ?")
	err := r.db.GetContext(ctx, &row, query, login)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, "", nil
		}
		return 0, "", err
	}
	return row.ID, row.Password, nil
}

func (r *SQLRepository) SaveEvaluation(ctx context.Context, userID int, input, output []byte, totalCost float64) (string, error) {
	id := uuid.NewString()
	query := r.db.Rebind(`INSERT INTO evaluations (id, user_id, input, output, total_cost, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`)
	_, err := r.db.ExecContext(ctx, query, id, userID, string(input), string(output), totalCost, time.Now().UnixMilli())
	if err != nil {
		return "", fmt.Errorf("save evaluation: %w", err)
	}
	return id, nil
}

// ListEvaluations returns the user's evaluations, newest first.
func (r *SQLRepository) ListEvaluations(ctx context.Context, userID, limit int) ([]EvaluationSummary, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	query := r.db.Rebind(`SELECT id, total_cost, created_at FROM evaluations
		WHERE user_id = ? ORDER BY created_at DESC, id LIMIT ?`)
	out := []EvaluationSummary{}
	if err := r.db.SelectContext(ctx, &out, query, userID, limit); err != nil {
		return nil, fmt.Errorf("list evaluations: %w", err)
	}
	return out, nil
}

func (r *SQLRepository) GetEvaluation(ctx context.Context, userID int, id string) (Evaluation, error) {
	var e Evaluation
	query := r.db.Rebind(`SELECT id, user_id, input, output, total_cost, created_at FROM evaluations
		WHERE id = ? AND user_id = ?`)
	if err := r.db.GetContext(ctx, &e, query, id, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Evaluation{}, ErrNotFound
		}
		return Evaluation{}, fmt.Errorf("get evaluation: %w", err)
	}
	return e, nil
}

// Package repo keeps a history of sizing runs in Postgres.
package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

type Run struct {
	ID        uuid.UUID       `json:"id"`
	Kind      string          `json:"kind"`
	CreatedAt time.Time       `json:"created_at"`
	Request   json.RawMessage `json:"request"`
	Result    json.RawMessage `json:"result"`
}

type Repository interface {
	SaveRun(ctx context.Context, kind string, request, result any) (Run, error)
	ListRuns(ctx context.Context, limit int) ([]Run, error)
}

type PostgresRunRepository struct {
	db *sql.DB
}

func NewPostgresRunDB(db *sql.DB) *PostgresRunRepository {
	return &PostgresRunRepository{db: db}
}

const schema = `CREATE TABLE IF NOT EXISTS sizing_runs (
	id UUID PRIMARY KEY,
	kind TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	request JSONB NOT NULL,
	result JSONB NOT NULL
)`

func (r *PostgresRunRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create sizing_runs: %w", err)
	}
	return nil
}

func (r *PostgresRunRepository) SaveRun(ctx context.Context, kind string, request, result any) (Run, error) {
	req, err := json.Marshal(request)
	if err != nil {
		return Run{}, fmt.Errorf("encode request: %w", err)
	}
	res, err := json.Marshal(result)
	if err != nil {
		return Run{}, fmt.Errorf("encode result: %w", err)
	}
	run := Run{
		ID:        uuid.New(),
		Kind:      kind,
		CreatedAt: time.Now().UTC(),
		Request:   req,
		Result:    res,
	}
	query := "INSERT INTO sizing_runs (id, kind, created_at, request, result) VALUES ($1, $2, $3, $4, $5)"
	if _, err := r.db.ExecContext(ctx, query, run.ID, run.Kind, run.CreatedAt, []byte(req), []byte(res)); err != nil {
		return Run{}, err
	}
	return run, nil
}

func (r *PostgresRunRepository) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	query := "SELECT id, kind, created_at, request, result FROM sizing_runs ORDER BY created_at DESC LIMIT $1"
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		var run Run
		var req, res []byte
		if err := rows.Scan(&run.ID, &run.Kind, &run.CreatedAt, &req, &res); err != nil {
			return nil, err
		}
		run.Request, run.Result = req, res
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Open connects to Postgres, requiring TLS unless the DSN says otherwise.
func Open(connStr string) (*sql.DB, error) {
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
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

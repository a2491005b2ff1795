package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// LoadPostgres reads the job catalog from a PostgreSQL `jobs` table with
// title, location, and cleaned_description columns, ordered by primary key
// so IDs stay stable across restarts of an unchanged table. The connection
// is only held for the duration of the load; the catalog itself lives in
// memory afterwards.
func LoadPostgres(ctx context.Context, databaseURL string) ([]Job, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	rows, err := pool.Query(ctx,
		`SELECT title, location, cleaned_description
		 FROM jobs
		 ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	var jobs []Job
	for rows.Next() {
		var title, location, description string
		if err := rows.Scan(&title, &location, &description); err != nil {
			return nil, fmt.Errorf("failed to scan job row: %w", err)
		}
		jobs = append(jobs, Job{
			ID:          len(jobs),
			Title:       title,
			Location:    location,
			Description: description,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read jobs: %w", err)
	}

	return jobs, nil
}

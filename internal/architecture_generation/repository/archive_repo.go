package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/GoSim-25-26J-441/archgen-backend/internal/architecture_generation/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

const archiveSchema = `
create table if not exists architecture_archive (
  id           text primary key,
  system_name  text not null,
  requirements jsonb not null,
  document     text not null,
  diagram      text not null,
  created_at   timestamptz not null default now()
);
create index if not exists architecture_archive_created_at_idx
  on architecture_archive (created_at desc);
`

// ArchiveRepository keeps generated architectures in Postgres.
type ArchiveRepository struct {
	db *pgxpool.Pool
}

func NewArchiveRepository(db *pgxpool.Pool) *ArchiveRepository {
	return &ArchiveRepository{db: db}
}

func (r *ArchiveRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, archiveSchema); err != nil {
		return fmt.Errorf("archive schema: %w", err)
	}
	return nil
}

func (r *ArchiveRepository) Save(ctx context.Context, e *domain.ArchiveEntry) error {
	req, err := json.Marshal(e.Requirements)
	if err != nil {
		return fmt.Errorf("failed to marshal requirements: %w", err)
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	_, err = r.db.Exec(ctx, `
insert into architecture_archive (id, system_name, requirements, document, diagram, created_at)
values ($1, $2, $3::jsonb, $4, $5, $6)
on conflict (id) do nothing
`, e.ID, e.SystemName, string(req), e.Document, e.Diagram, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to archive architecture: %w", err)
	}
	return nil
}

// ListRecent returns the newest entries without document and diagram bodies.
func (r *ArchiveRepository) ListRecent(ctx context.Context, limit int) ([]domain.ArchiveEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	rows, err := r.db.Query(ctx, `
select id, system_name, requirements::text, created_at
from architecture_archive
order by created_at desc
limit $1
`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list archive: %w", err)
	}
	defer rows.Close()

	out := []domain.ArchiveEntry{}
	for rows.Next() {
		var (
			e   domain.ArchiveEntry
			req string
		)
		if err := rows.Scan(&e.ID, &e.SystemName, &req, &e.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(req), &e.Requirements); err != nil {
			return nil, fmt.Errorf("failed to unmarshal requirements: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// PurgeOlderThan deletes entries created before cutoff and returns how many.
func (r *ArchiveRepository) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `delete from architecture_archive where created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge archive: %w", err)
	}
	return tag.RowsAffected(), nil
}

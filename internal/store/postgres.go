package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const notifyChannel = "document_changes"

// Postgres stores every collection in a single jsonb documents table and
// drives subscriptions off LISTEN/NOTIFY: a trigger announces the changed
// collection, subscribers reload it and replace their snapshot.
type Postgres struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

func NewPostgres(pool *pgxpool.Pool, log *zap.Logger) *Postgres {
	return &Postgres{pool: pool, log: log}
}

// EnsureSchema creates the documents table and its change trigger.
func (s *Postgres) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS documents (
			collection TEXT NOT NULL,
			id         TEXT NOT NULL,
			doc        JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (collection, id)
		);

		CREATE OR REPLACE FUNCTION documents_notify() RETURNS trigger AS $$
		BEGIN
			PERFORM pg_notify('`+notifyChannel+`', COALESCE(NEW.collection, OLD.collection));
			RETURN NULL;
		END;
		$$ LANGUAGE plpgsql;

		DROP TRIGGER IF EXISTS documents_notify ON documents;
		CREATE TRIGGER documents_notify
			AFTER INSERT OR UPDATE OR DELETE ON documents
			FOR EACH ROW EXECUTE FUNCTION documents_notify();
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure documents schema: %w", err)
	}
	return nil
}

func (s *Postgres) Upsert(ctx context.Context, collection, id string, record any) error {
	doc, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal %s/%s: %w", collection, id, err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO documents (collection, id, doc)
		VALUES ($1, $2, $3)
		ON CONFLICT (collection, id)
		DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()
	`, collection, id, doc)
	if err != nil {
		return fmt.Errorf("failed to upsert %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *Postgres) Load(ctx context.Context, collection string) ([]Document, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, doc FROM documents WHERE collection = $1 ORDER BY id
	`, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to load collection %s: %w", collection, err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var d Document
		if err := rows.Scan(&d.ID, &d.Data); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read collection %s: %w", collection, err)
	}
	return docs, nil
}

func (s *Postgres) QueryByField(ctx context.Context, collection, field, value string) ([]Document, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, doc FROM documents WHERE collection = $1 AND doc->>$2 = $3 ORDER BY id
	`, collection, field, value)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s by %s: %w", collection, field, err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var d Document
		if err := rows.Scan(&d.ID, &d.Data); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read query results: %w", err)
	}
	return docs, nil
}

// Subscribe loads the collection once, then holds a dedicated connection on
// LISTEN and reloads whenever the trigger announces a change to this
// collection. Reload failures are logged and the subscription keeps going;
// the next change will try again.
func (s *Postgres) Subscribe(ctx context.Context, collection string, onChange func(docs []Document)) (func(), error) {
	docs, err := s.Load(ctx, collection)
	if err != nil {
		return nil, err
	}
	onChange(docs)

	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire listener connection: %w", err)
	}
	if _, err := conn.Exec(ctx, "LISTEN "+notifyChannel); err != nil {
		conn.Release()
		return nil, fmt.Errorf("failed to listen on %s: %w", notifyChannel, err)
	}

	subCtx, cancel := context.WithCancel(ctx)
	go func() {
		defer conn.Release()
		for {
			n, err := conn.Conn().WaitForNotification(subCtx)
			if err != nil {
				if subCtx.Err() == nil {
					s.log.Warn("subscription listener stopped",
						zap.String("collection", collection), zap.Error(err))
				}
				return
			}
			if n.Payload != collection {
				continue
			}
			docs, err := s.Load(subCtx, collection)
			if err != nil {
				s.log.Warn("failed to reload collection after change",
					zap.String("collection", collection), zap.Error(err))
				continue
			}
			onChange(docs)
		}
	}()
	return cancel, nil
}

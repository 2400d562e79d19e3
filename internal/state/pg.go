package state

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// PGStore keeps the root as a single JSONB document in Postgres. The
// whole-document layout and semantics match FileStore exactly; only the
// medium differs.
type PGStore struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

func NewPGStore(pool *pgxpool.Pool, log zerolog.Logger) *PGStore {
	return &PGStore{pool: pool, log: log}
}

// EnsureSchema creates the single-row state table if it does not exist.
func (s *PGStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS oracle_state (
			id  int PRIMARY KEY,
			doc jsonb NOT NULL
		)
	`)
	return err
}

func (s *PGStore) Load() Root {
	var data []byte
	err := s.pool.QueryRow(
		context.Background(),
		`SELECT doc FROM oracle_state WHERE id = 1`,
	).Scan(&data)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			s.log.Warn().Err(err).Msg("unable to read state row, starting empty")
		}
		return Root{}
	}

	var root Root
	if err := json.Unmarshal(data, &root); err != nil {
		s.log.Warn().Err(err).Msg("state row is corrupt, starting empty")
		return Root{}
	}
	if root == nil {
		root = Root{}
	}
	return root
}

func (s *PGStore) Save(root Root) {
	data, err := json.Marshal(root)
	if err != nil {
		s.log.Error().Err(err).Msg("unable to encode state")
		return
	}

	_, err = s.pool.Exec(
		context.Background(),
		`INSERT INTO oracle_state (id, doc) VALUES (1, $1)
		 ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc`,
		data,
	)
	if err != nil {
		s.log.Error().Err(err).Msg("unable to write state row")
	}
}

package sqlstore

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/ventkeeper/ventkeeper/internal/app"
	"github.com/ventkeeper/ventkeeper/internal/bot"
)

const runsSchema = `
CREATE TABLE IF NOT EXISTS purge_runs (
	id            TEXT PRIMARY KEY,
	channel_id    INTEGER NOT NULL,
	source        TEXT NOT NULL,
	actor         TEXT NOT NULL DEFAULT '',
	started_at    TIMESTAMP NOT NULL,
	finished_at   TIMESTAMP NOT NULL,
	retrieved     INTEGER NOT NULL DEFAULT 0,
	archived      INTEGER NOT NULL DEFAULT 0,
	relayed       INTEGER NOT NULL DEFAULT 0,
	deleted       INTEGER NOT NULL DEFAULT 0,
	failed_chunks INTEGER NOT NULL DEFAULT 0,
	aged          INTEGER NOT NULL DEFAULT 0,
	error         TEXT NOT NULL DEFAULT ''
);
`

// RunStore persists purge-run summaries to sqlite.
type RunStore struct {
	db           *sqlx.DB
	log          bot.Logger
	queryBuilder sq.StatementBuilderType
}

// New opens (and if needed bootstraps) the run-history database at path.
func New(path string, log bot.Logger) (*RunStore, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(err, "sqlstore: failed to open %s", path)
	}
	if _, err := db.Exec(runsSchema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "sqlstore: failed to create purge_runs table")
	}

	return &RunStore{
		db:           db,
		log:          log,
		queryBuilder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}, nil
}

// RecordRun inserts one run summary.
func (s *RunStore) RecordRun(rec app.RunRecord) error {
	query, args, err := s.queryBuilder.
		Insert("purge_runs").
		Columns("id", "channel_id", "source", "actor", "started_at", "finished_at",
			"retrieved", "archived", "relayed", "deleted", "failed_chunks", "aged", "error").
		Values(rec.ID, rec.ChannelID, rec.Source, rec.Actor, rec.StartedAt, rec.FinishedAt,
			rec.Retrieved, rec.Archived, rec.Relayed, rec.Deleted, rec.FailedChunks, rec.Aged, rec.Error).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "sqlstore: failed to build insert for purge_runs")
	}

	if _, err := s.db.Exec(query, args...); err != nil {
		return errors.Wrapf(err, "sqlstore: failed to insert run %s", rec.ID)
	}
	s.log.Debugf("sqlstore: recorded run %s", rec.ID)
	return nil
}

// RecentRuns returns the latest runs, newest first.
func (s *RunStore) RecentRuns(limit int) ([]app.RunRecord, error) {
	query, args, err := s.queryBuilder.
		Select("*").
		From("purge_runs").
		OrderBy("started_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "sqlstore: failed to build select for purge_runs")
	}

	recs := []app.RunRecord{}
	if err := s.db.Select(&recs, query, args...); err != nil {
		return nil, errors.Wrap(err, "sqlstore: failed to select purge_runs")
	}
	return recs, nil
}

// Close releases the database handle.
func (s *RunStore) Close() error {
	return s.db.Close()
}

// Package sqlite reads the table catalog from a sqlite database file.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	nt "shopcat/entity"
	"shopcat/store"
)

type Sqlite struct {
	db     *sql.DB
	path   string
	table  string
	logger nt.Logger
}

func New(path, table string, lgr nt.Logger) (sq *Sqlite, err error) {

	db, err := sql.Open("sqlite", path)
	if err != nil {
		err = errors.Wrapf(err, "failed to open sqlite at %s", path)
		return
	}

	sq = &Sqlite{
		db:     db,
		path:   path,
		table:  table,
		logger: lgr,
	}
	return
}

func (sq *Sqlite) Close() {
	sq.db.Close()
}

// Name returns the file and table names are read from
func (sq *Sqlite) Name() string {
	return fmt.Sprintf("%s:%s", sq.path, sq.table)
}

// Names returns every name in the catalog table
func (sq *Sqlite) Names(ctx context.Context) (names []string, err error) {

	rows, err := sq.db.QueryContext(ctx, store.SelectNames(sq.table))
	if err != nil {
		err = errors.Wrapf(err, "failed to query %s", sq.table)
		return
	}

	names, err = store.ScanNames(rows)
	return
}

// Seed creates the catalog table if needed and adds names to it
func (sq *Sqlite) Seed(ctx context.Context, names ...string) (err error) {

	_, err = sq.db.ExecContext(ctx, store.CreateNames(sq.table))
	if err != nil {
		err = errors.Wrapf(err, "failed to create %s", sq.table)
		return
	}

	for _, name := range names {
		_, err = sq.db.ExecContext(ctx, store.InsertName(sq.table), name)
		if err != nil {
			err = errors.Wrapf(err, "failed to insert %q", name)
			return
		}
	}

	sq.logger.Info(ctx, "seeded catalog", "table", sq.table, "count", len(names))
	return
}

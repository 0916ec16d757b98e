// Package duck reads the table catalog from a duckdb database.
package duck

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/marcboeker/go-duckdb"
	"github.com/pkg/errors"

	nt "shopcat/entity"
	"shopcat/store"
)

// Todo: use uptodate lib from duckdb in main

type Duck struct {
	db     *sql.DB
	path   string
	table  string
	logger nt.Logger
}

// New opens a duck at path, an empty path is in-memory
func New(path, table string, lgr nt.Logger) (dk *Duck, err error) {

	db, err := sql.Open("duckdb", path)
	if err != nil {
		err = errors.Wrapf(err, "failed to open duck at %q", path)
		return
	}

	dk = &Duck{
		db:     db,
		path:   path,
		table:  table,
		logger: lgr,
	}

	return
}

func (dk *Duck) Close() {
	dk.db.Close()
}

// Name returns the name of the data source
func (dk *Duck) Name() string {
	path := dk.path
	if path == "" {
		path = "memory"
	}
	return fmt.Sprintf("duck:%s:%s", path, dk.table)
}

// Names returns every name in the catalog table
func (dk *Duck) Names(ctx context.Context) (names []string, err error) {

	rows, err := dk.db.QueryContext(ctx, store.SelectNames(dk.table))
	if err != nil {
		err = errors.Wrapf(err, "failed to query %s", dk.table)
		return
	}

	names, err = store.ScanNames(rows)
	return
}

// Seed creates the catalog table if needed and adds names to it
func (dk *Duck) Seed(ctx context.Context, names ...string) (err error) {

	_, err = dk.db.ExecContext(ctx, store.CreateNames(dk.table))
	if err != nil {
		err = errors.Wrapf(err, "failed to create table")
		return
	}

	for _, name := range names {
		_, err = dk.db.ExecContext(ctx, store.InsertName(dk.table), name)
		if err != nil {
			err = errors.Wrapf(err, "failed to insert %q", name)
			return
		}
	}

	dk.logger.Info(ctx, "seeded catalog", "table", dk.table, "count", len(names))
	return
}

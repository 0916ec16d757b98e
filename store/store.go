// Package store specifies where the table catalog comes from.
package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/pkg/errors"
)

// ErrCatalogLoad wraps any failure reading the catalog, which is fatal at startup.
var ErrCatalogLoad = errors.New("failed to load catalog")

// Catalog specifies a backing datastore of table names.
type Catalog interface {
	// Name returns the name of the data source
	Name() string
	// Names returns table names in the order the source yields them
	Names(ctx context.Context) (names []string, err error)
	// Close releases the source
	Close()
}

// LoadError reports which source failed, it matches ErrCatalogLoad.
type LoadError struct {
	Source string
	Err    error
}

func (le *LoadError) Error() string {
	return "failed to load catalog from " + le.Source + ": " + le.Err.Error()
}

func (le *LoadError) Unwrap() error {
	return le.Err
}

func (le *LoadError) Is(target error) bool {
	return target == ErrCatalogLoad
}

// Load reads all names from the catalog, or none at all.
func Load(ctx context.Context, cat Catalog) (names []string, err error) {

	names, err = cat.Names(ctx)
	if err != nil {
		names = nil
		err = &LoadError{Source: cat.Name(), Err: err}
	}
	return
}

// Quote quotes an identifier for use in a query.
func Quote(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

// SelectNames returns a query yielding every row of a catalog table.
func SelectNames(table string) string {
	return "SELECT * FROM " + Quote(table)
}

// CreateNames returns a statement creating a catalog table if missing.
func CreateNames(table string) string {
	return "CREATE TABLE IF NOT EXISTS " + Quote(table) + " (name TEXT UNIQUE)"
}

// InsertName returns a statement adding one name to a catalog table.
func InsertName(table string) string {
	return "INSERT INTO " + Quote(table) + " (name) VALUES (?) ON CONFLICT DO NOTHING"
}

// ScanNames collects the first column of each row as a name.
func ScanNames(rows *sql.Rows) (names []string, err error) {
	defer rows.Close()

	count, err := columnCount(rows)
	if err != nil {
		return
	}
	if count == 0 {
		err = errors.New("catalog table has no columns")
		return
	}

	for rows.Next() {
		var vals []any
		vals, err = scanRow(rows, count)
		if err != nil {
			err = errors.Wrapf(err, "failed to scan row")
			return
		}

		var name string
		name, err = asName(vals[0])
		if err != nil {
			return
		}
		names = append(names, name)
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating rows")
	return
}

// unexported

func columnCount(rows *sql.Rows) (int, error) {
	cols, err := rows.Columns()
	if err != nil {
		return 0, errors.Wrapf(err, "failed to get cols from query rows")
	}
	return len(cols), nil
}

func scanRow(rows *sql.Rows, columnCount int) ([]any, error) {
	vals := make([]any, columnCount)
	ptrs := make([]any, columnCount)
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	err := rows.Scan(ptrs...)
	return vals, err
}

func asName(val any) (string, error) {
	switch val := val.(type) {
	case string:
		return val, nil
	case []byte:
		return string(val), nil
	}
	return "", errors.Errorf("expected text name, got %T", val)
}

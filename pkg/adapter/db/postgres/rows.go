package postgres

import (
	"database/sql"
	"fmt"
)

// rowsAdapter exposes *sql.Rows as the repo.Rows interface, adding
// the Values convenience scan and a Close which defers error
// reporting to the Err method.
type rowsAdapter struct {
	*sql.Rows
}

func (ra rowsAdapter) Close() {
	// returned error may be checked by calling the Err() method
	_ = ra.Rows.Close()
}

// Values scans the current row into a slice of any values, one per
// column of the result set.
func (ra rowsAdapter) Values() ([]any, error) {
	names, err := ra.Columns()
	if err != nil {
		return nil, fmt.Errorf("column-names: %w", err)
	}
	vals := make([]any, len(names))
	valPtrs := make([]any, len(names))
	for i := range vals {
		valPtrs[i] = &vals[i]
	}
	err = ra.Scan(valPtrs...)
	return vals, err
}

package repo

import "context"

// Queryer executes raw SQL statements on a connection or transaction.
// Exec returns the number of affected rows; Query returns a result
// set which must be closed before the next statement may run.
type Queryer interface {
	Exec(ctx context.Context, sql string, args ...any) (count int64, err error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
}

type Rows interface {
	Close()
	Err() error
	Next() bool
	Scan(dest ...any) error
	Values() ([]any, error)
}

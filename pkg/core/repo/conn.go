package repo

import "context"

type TxHandler func(context.Context, Tx) error

// Conn represents a single borrowed database connection. Statements
// may run on it directly, or a transaction may be opened with Tx which
// commits when the handler returns nil and rolls back otherwise.
type Conn interface {
	Queryer
	Tx(ctx context.Context, handler TxHandler) error
	IsConn()
}

package repo

import "context"

type ConnHandler func(context.Context, Conn) error

// Pool represents a database connection pool. Connections are not
// handed out directly; a handler runs with a borrowed connection which
// is released when it returns.
type Pool interface {
	Conn(ctx context.Context, handler ConnHandler) error
}

package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/marquee/internal/marquee/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. Sub-repositories are methods so a transaction can hand out
// the same repos bound to itself.
type Store interface {
	Repos

	ApplyMigrations() error

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise. Transactions do not nest.
	WithTx(ctx context.Context, fn func(tx Repos) error) error

	// Close releases the underlying pool.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Repos is the set of repositories available both on the Store and inside a
// transaction.
type Repos interface {
	Clients() Clients
	Catalog() Catalog
}

type Clients interface {
	// CreateClient inserts a client in a single statement. A taken name is
	// reported as ErrAlreadyExists by the unique constraint, never by a
	// prior read.
	CreateClient(ctx context.Context, name, encryptedPassword string) error

	// GetEncryptedPassword returns the stored digest, or ErrNotFound.
	GetEncryptedPassword(ctx context.Context, name string) (string, error)

	// GetClient returns the whole record, or ErrNotFound.
	GetClient(ctx context.Context, name string) (domain.Client, error)
}

type Catalog interface {
	ListLookups(ctx context.Context, kind domain.LookupKind) ([]domain.Lookup, error)
	GetLookup(ctx context.Context, kind domain.LookupKind, id int64) (domain.Lookup, error)

	// LookupIDByName resolves a name, or ErrNotFound.
	LookupIDByName(ctx context.Context, kind domain.LookupKind, name string) (int64, error)

	// CreateLookup inserts a value; duplicate names give ErrAlreadyExists.
	CreateLookup(ctx context.Context, kind domain.LookupKind, name string) (domain.Lookup, error)

	// ListMovies and ListBasicMovies page by offset/limit in id order.
	ListMovies(ctx context.Context, offset, limit int64) ([]domain.Movie, error)
	ListBasicMovies(ctx context.Context, offset, limit int64) ([]domain.BasicMovie, error)

	GetMovie(ctx context.Context, id int64) (domain.Movie, error)

	// CreateMovie inserts the movie and its genre and country links and
	// returns the new id. Call it inside WithTx.
	CreateMovie(ctx context.Context, m domain.MovieRecord) (int64, error)
}

package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/hoaboard/internal/hoa/store"
)

type txStore struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{tx: tx}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // the outer DB stays open

// Ping is a no-op, the connection is held by the transaction.
func (t *txStore) Ping(ctx context.Context) error {
	return nil
}

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Users() store.Users                   { return &usersRepo{db: t.tx} }
func (t *txStore) PasswordResets() store.PasswordResets { return &passwordResetsRepo{db: t.tx} }
func (t *txStore) Communities() store.Communities       { return &communitiesRepo{db: t.tx} }
func (t *txStore) Memberships() store.Memberships       { return &membershipsRepo{db: t.tx} }
func (t *txStore) Polls() store.Polls                   { return &pollsRepo{db: t.tx} }
func (t *txStore) Potlucks() store.Potlucks             { return &potlucksRepo{db: t.tx} }
func (t *txStore) Suggestions() store.Suggestions       { return &suggestionsRepo{db: t.tx} }
func (t *txStore) Questions() store.Questions           { return &questionsRepo{db: t.tx} }
func (t *txStore) CalendarEvents() store.CalendarEvents { return &calendarRepo{db: t.tx} }

func (t *txStore) ApplyMigrations() error { return nil } // migrations run before any tx

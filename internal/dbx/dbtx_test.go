package dbx

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

const registryKey = "lumina_users"

var errDuplicate = errors.New("duplicate email")

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE records (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)
	return db
}

func readEmails(ctx context.Context, q DBTX) ([]string, error) {
	var raw []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM records WHERE key = ?`, registryKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var emails []string
	return emails, json.Unmarshal(raw, &emails)
}

func writeEmails(ctx context.Context, q DBTX, emails []string) error {
	raw, err := json.Marshal(emails)
	if err != nil {
		return err
	}
	_, err = q.ExecContext(ctx, `INSERT INTO records (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, registryKey, raw)
	return err
}

// register appends email to the registry unless it is already present.
func register(ctx context.Context, db *sql.DB, email string) error {
	return WithTx(ctx, db, nil, func(ctx context.Context, tx DBTX) error {
		emails, err := readEmails(ctx, tx)
		if err != nil {
			return err
		}
		for _, e := range emails {
			if e == email {
				return errDuplicate
			}
		}
		return writeEmails(ctx, tx, append(emails, email))
	})
}

func mustEmails(t *testing.T, db *sql.DB) []string {
	t.Helper()
	emails, err := readEmails(context.Background(), db)
	require.NoError(t, err)
	return emails
}

func TestWithTx_CommitsRegistryAppend(t *testing.T) {
	db := setupDB(t)

	require.NoError(t, register(context.Background(), db, "ada@x.io"))
	require.NoError(t, register(context.Background(), db, "bob@x.io"))

	assert.Equal(t, []string{"ada@x.io", "bob@x.io"}, mustEmails(t, db))
}

func TestWithTx_RollbackLeavesRegistryUnchanged(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	require.NoError(t, register(ctx, db, "ada@x.io"))

	// write first, then fail the check: the write must not survive
	err := WithTx(ctx, db, nil, func(ctx context.Context, tx DBTX) error {
		require.NoError(t, writeEmails(ctx, tx, []string{"ada@x.io", "ada@x.io"}))
		return errDuplicate
	})
	require.ErrorIs(t, err, errDuplicate)
	assert.Equal(t, []string{"ada@x.io"}, mustEmails(t, db))

	require.ErrorIs(t, register(ctx, db, "ada@x.io"), errDuplicate)
	assert.Equal(t, []string{"ada@x.io"}, mustEmails(t, db))
}

func TestWithTx_RollbackOnPanic(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, register(context.Background(), db, "ada@x.io"))

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic to propagate")
		}
		require.Equal(t, []string{"ada@x.io"}, mustEmails(t, db), "must rollback on panic")
	}()

	_ = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		require.NoError(t, writeEmails(ctx, tx, nil))
		panic("kaput")
	})
}

func TestWithTx_ConcurrentRegistrationsOfOneEmail(t *testing.T) {
	db := setupDB(t)

	const n = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if register(context.Background(), db, "ada@x.io") == nil {
				mu.Lock()
				success++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, success)
	assert.Equal(t, []string{"ada@x.io"}, mustEmails(t, db))
}

func TestWithTx_BeginError(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Close())

	err := register(context.Background(), db, "ada@x.io")
	require.Error(t, err, "begin should fail when DB is closed")
	require.Contains(t, err.Error(), "begin tx")
}

package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRow struct {
	value string
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*string) = r.value
	return nil
}

// fakeDB keeps rows in a map the way the upsert would.
type fakeDB struct {
	rows    map[string]string
	execErr error
	execs   int
}

func (f *fakeDB) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	v, ok := f.rows[args[0].(string)]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{value: v}
}

func (f *fakeDB) Exec(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
	f.execs++
	if f.execErr != nil {
		return pgconn.CommandTag{}, f.execErr
	}
	f.rows[args[0].(string)] = args[1].(string)
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func TestAdStore(t *testing.T) {
	ctx := context.Background()
	db := &fakeDB{rows: map[string]string{}}
	s := NewAdStore(db)

	_, found, err := s.Get(ctx, "daily_ad_campaign")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "daily_ad_campaign", `{"id":"a"}`))
	require.NoError(t, s.Set(ctx, "daily_ad_campaign", `{"id":"b"}`))
	assert.Equal(t, 2, db.execs)

	v, found, err := s.Get(ctx, "daily_ad_campaign")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"id":"b"}`, v)
}

func TestAdStoreErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("conn reset")
	db := &fakeDB{rows: map[string]string{}, execErr: boom}
	s := NewAdStore(db)

	assert.ErrorIs(t, s.Set(ctx, "k", "v"), boom)

	s = NewAdStore(errDB{err: boom})
	_, found, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, boom)
	assert.False(t, found)
}

type errDB struct{ err error }

func (e errDB) QueryRow(context.Context, string, ...any) pgx.Row { return fakeRow{err: e.err} }

func (e errDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, e.err
}

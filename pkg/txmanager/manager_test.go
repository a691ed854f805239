package txmanager

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m0rzhov/PTS-TimetableService/pkg/dbmetrics"
)

type fakeTx struct {
	commitFn func() error
	rollback int
}

func (f *fakeTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (f *fakeTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (f *fakeTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func (f *fakeTx) Commit() error {
	return f.commitFn()
}

func (f *fakeTx) Rollback() error {
	f.rollback++
	return nil
}

type fakeBeginner struct {
	tx *fakeTx
}

func (f *fakeBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	return f.tx, nil
}

func serializationFailure() error {
	return &pq.Error{Code: "40001"}
}

func TestDoSerializable_RetriesCommitSerializationFailure(t *testing.T) {
	commits := 0
	tx := &fakeTx{
		commitFn: func() error {
			commits++
			if commits < 3 {
				return serializationFailure()
			}
			return nil
		},
	}
	m := &TransactionManager{db: &fakeBeginner{tx: tx}}

	calls := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 3, commits)
}

func TestDoSerializable_RetriesExceeded(t *testing.T) {
	tx := &fakeTx{
		commitFn: func() error { return serializationFailure() },
	}
	m := &TransactionManager{db: &fakeBeginner{tx: tx}}

	calls := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	assert.ErrorIs(t, err, ErrRetriesExceeded)
	assert.Equal(t, maxSerializableRetries, calls)
}

func TestDoSerializable_BusinessErrorNotRetried(t *testing.T) {
	tx := &fakeTx{
		commitFn: func() error { return nil },
	}
	m := &TransactionManager{db: &fakeBeginner{tx: tx}}

	bizErr := fmt.Errorf("slot is full")
	calls := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return bizErr
	})

	assert.ErrorIs(t, err, bizErr)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, tx.rollback)
}

func TestIsSerializationFailure_SurvivesWrapping(t *testing.T) {
	raw := serializationFailure()

	assert.True(t, IsSerializationFailure(raw))
	// Ошибка фиксации в runInTx
	assert.True(t, IsSerializationFailure(fmt.Errorf("%w: %w", ErrCommitTx, raw)))
	// Ошибка запроса, обёрнутая слоем репозитория и use case
	repoErr := fmt.Errorf("repository: exec query: %w", raw)
	assert.True(t, IsSerializationFailure(fmt.Errorf("usecase: internal: %w", repoErr)))

	assert.False(t, IsSerializationFailure(&pq.Error{Code: "23505"}))
	assert.False(t, IsSerializationFailure(fmt.Errorf("plain error")))
}

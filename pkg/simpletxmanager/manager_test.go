package simpletxmanager

import (
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsSerializationFailure_SurvivesWrapping(t *testing.T) {
	raw := &pq.Error{Code: "40001"}

	assert.True(t, isSerializationFailure(raw))
	// Ошибка фиксации в run
	assert.True(t, isSerializationFailure(fmt.Errorf("%w: %w", ErrCommitTx, raw)))

	assert.False(t, isSerializationFailure(&pq.Error{Code: "23505"}))
}

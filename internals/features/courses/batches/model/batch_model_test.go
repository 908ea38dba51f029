// file: internals/features/courses/batches/model/batch_model_test.go
package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidPeriod(t *testing.T) {
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		year    int
		month   int
		wantErr bool
	}{
		{"valid current year", 2026, 8, false},
		{"valid next year", 2027, 1, false},
		{"valid lower bound", 2000, 12, false},
		{"month zero", 2026, 0, true},
		{"month thirteen", 2026, 13, true},
		{"year below bound", 1999, 6, true},
		{"year too far ahead", 2028, 6, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidPeriod(tt.year, tt.month, now)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHasConflict(t *testing.T) {
	idA := uuid.New()
	idB := uuid.New()
	siblings := []BatchModel{
		{BatchID: idA, BatchName: "Batch A", BatchYear: 2026, BatchMonth: 3},
		{BatchID: idB, BatchName: "Batch B", BatchYear: 2026, BatchMonth: 3},
	}

	t.Run("same triple conflicts", func(t *testing.T) {
		assert.True(t, HasConflict(siblings, "Batch A", 2026, 3, uuid.Nil))
	})

	t.Run("whitespace-padded name still conflicts", func(t *testing.T) {
		assert.True(t, HasConflict(siblings, "  Batch A  ", 2026, 3, uuid.Nil))
	})

	t.Run("different month is free", func(t *testing.T) {
		assert.False(t, HasConflict(siblings, "Batch A", 2026, 4, uuid.Nil))
	})

	t.Run("different year is free", func(t *testing.T) {
		assert.False(t, HasConflict(siblings, "Batch A", 2025, 3, uuid.Nil))
	})

	t.Run("different name is free", func(t *testing.T) {
		assert.False(t, HasConflict(siblings, "Batch C", 2026, 3, uuid.Nil))
	})

	t.Run("update excludes its own row", func(t *testing.T) {
		assert.False(t, HasConflict(siblings, "Batch A", 2026, 3, idA))
	})

	t.Run("update still conflicts with other rows", func(t *testing.T) {
		assert.True(t, HasConflict(siblings, "Batch B", 2026, 3, idA))
	})
}

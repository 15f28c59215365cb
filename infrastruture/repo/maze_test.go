package repo

import (
	"testing"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestMazeDocument(t *testing.T) {
	record := &dmn.MazeRecord{
		ID:         uuid.New(),
		Size:       12,
		Seed:       -42,
		PathLength: 31,
		CreatedAt:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	t.Run("bson field names", func(t *testing.T) {
		raw, err := bson.Marshal(toDocument(record))
		require.NoError(t, err)

		var m bson.M
		require.NoError(t, bson.Unmarshal(raw, &m))
		assert.Equal(t, record.ID.String(), m["_id"])
		assert.EqualValues(t, 12, m["size"])
		assert.EqualValues(t, -42, m["seed"])
		assert.EqualValues(t, 31, m["pathLength"])
		assert.Contains(t, m, "createdAt")
	})

	t.Run("back to record", func(t *testing.T) {
		got, err := toDocument(record).toRecord()
		require.NoError(t, err)
		assert.Equal(t, record, got)
	})

	t.Run("corrupt id", func(t *testing.T) {
		_, err := mazeDocument{ID: "not-a-uuid"}.toRecord()
		assert.Error(t, err)
	})
}

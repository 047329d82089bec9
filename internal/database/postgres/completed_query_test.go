package postgres

import (
	"fmt"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukeramljak/charsibot/internal/domain"
	"github.com/lukeramljak/charsibot/migrations"
)

// The completed-collections query must repeat the partial index predicate
// literally, otherwise the planner cannot use the index.
func TestListCompletedSQL_MatchesPartialIndex(t *testing.T) {
	predicate := fmt.Sprintf("WHERE owned_slots = %d", domain.FullSlotSet)

	schema, err := migrations.FS.ReadFile(path.Join(migrations.PostgresDir, "00001_user_collections.sql"))
	require.NoError(t, err)

	assert.Contains(t, string(schema), predicate)
	assert.Contains(t, listCompletedSQL, predicate)
}

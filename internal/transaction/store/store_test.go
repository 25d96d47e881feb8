package store

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/realty/internal/agent"
	"github.com/MrJamesThe3rd/realty/internal/transaction"
)

func TestCompletedByAgentQuery(t *testing.T) {
	agentID := uuid.New()

	t.Run("NoBounds", func(t *testing.T) {
		query, args := completedByAgentQuery(agent.ListCompletedParams{AgentID: agentID})

		assert.Contains(t, query, "t.stage = $1")
		assert.NotContains(t, query, "t.created_at >=")
		assert.NotContains(t, query, "t.created_at <=")
		require.Len(t, args, 2)
		assert.Equal(t, transaction.StageCompleted, args[0])
		assert.Equal(t, agentID, args[1])
	})

	t.Run("BothBounds", func(t *testing.T) {
		from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2025, 1, 31, 23, 59, 59, 999999999, time.UTC)

		query, args := completedByAgentQuery(agent.ListCompletedParams{
			AgentID: agentID,
			From:    &from,
			To:      &to,
		})

		// Inclusive on both ends: >= and <=, never strict comparisons.
		assert.Contains(t, query, "t.created_at >= $3")
		assert.Contains(t, query, "t.created_at <= $4")
		assert.NotContains(t, query, "t.created_at > $")
		assert.NotContains(t, query, "t.created_at < $")
		require.Len(t, args, 4)
		assert.Equal(t, from, args[2])
		assert.Equal(t, to, args[3])
	})

	t.Run("ToOnly", func(t *testing.T) {
		to := time.Date(2025, 1, 31, 23, 59, 59, 999999999, time.UTC)

		query, args := completedByAgentQuery(agent.ListCompletedParams{AgentID: agentID, To: &to})

		assert.NotContains(t, query, "t.created_at >=")
		assert.Contains(t, query, "t.created_at <= $3")
		require.Len(t, args, 3)
		assert.Equal(t, to, args[2])
	})
}

func TestGetSharesQueryHasStableOrder(t *testing.T) {
	// created_at alone cannot order shares written in one transaction.
	assert.True(t, strings.HasSuffix(strings.TrimSpace(getSharesQuery), "ORDER BY id ASC"))
}

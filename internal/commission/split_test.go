package commission_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/realty/internal/commission"
)

func TestCompletionSplitDistinctAgents(t *testing.T) {
	listing := uuid.New()
	selling := uuid.New()

	agency, shares := commission.CompletionSplit(10000, listing, selling)

	require.Len(t, shares, 2)
	assert.Equal(t, int64(5000), agency)
	assert.Equal(t, listing, shares[0].AgentID)
	assert.Equal(t, int64(2500), shares[0].AmountMinor)
	assert.Equal(t, selling, shares[1].AgentID)
	assert.Equal(t, int64(2500), shares[1].AmountMinor)
}

func TestCompletionSplitOddCentGoesToListing(t *testing.T) {
	listing := uuid.New()
	selling := uuid.New()

	// agentPortion = 51: listing 26, selling 25.
	agency, shares := commission.CompletionSplit(101, listing, selling)

	require.Len(t, shares, 2)
	assert.Equal(t, int64(50), agency)
	assert.Equal(t, int64(26), shares[0].AmountMinor)
	assert.Equal(t, int64(25), shares[1].AmountMinor)
}

func TestCompletionSplitSoloAgent(t *testing.T) {
	agent := uuid.New()

	agency, shares := commission.CompletionSplit(10001, agent, agent)

	require.Len(t, shares, 1)
	assert.Equal(t, int64(5000), agency)
	assert.Equal(t, agent, shares[0].AgentID)
	assert.Equal(t, int64(5001), shares[0].AmountMinor)
}

func TestCompletionSplitConservesTotal(t *testing.T) {
	listing := uuid.New()
	selling := uuid.New()

	for total := int64(0); total <= 1000; total++ {
		agency, shares := commission.CompletionSplit(total, listing, selling)

		var sum int64
		for _, s := range shares {
			sum += s.AmountMinor
		}

		require.Equal(t, total, agency+sum, "total %d", total)
	}
}

func TestEarningsSplit(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		role  commission.Role
		want  int64
	}{
		{name: "SoloGetsFullPortion", total: 101, role: commission.RoleSolo, want: 51},
		{name: "ListingRoundsDown", total: 101, role: commission.RoleListing, want: 25},
		{name: "SellingRoundsUp", total: 101, role: commission.RoleSelling, want: 26},
		{name: "EvenSplit", total: 100, role: commission.RoleListing, want: 25},
		{name: "OtherEarnsNothing", total: 100, role: commission.RoleOther, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, commission.EarningsSplit(tt.total, tt.role))
		})
	}
}

// The completion path rounds the odd minor unit to the listing agent while
// the earnings report rounds it to the selling agent. Both behaviors are
// load-bearing; this pins the divergence so nobody "fixes" one of them.
func TestSplitPoliciesDivergeOnOddPortion(t *testing.T) {
	listing := uuid.New()
	selling := uuid.New()

	_, shares := commission.CompletionSplit(101, listing, selling)
	require.Len(t, shares, 2)

	assert.Equal(t, int64(26), shares[0].AmountMinor, "completion: odd cent to listing")
	assert.Equal(t, int64(25), commission.EarningsSplit(101, commission.RoleListing))
	assert.Equal(t, int64(26), commission.EarningsSplit(101, commission.RoleSelling), "earnings: odd cent to selling")
}

func TestAgencyPortionIsFloor(t *testing.T) {
	assert.Equal(t, int64(50), commission.AgencyPortion(101))
	assert.Equal(t, int64(50), commission.AgencyPortion(100))
	assert.Equal(t, int64(0), commission.AgencyPortion(0))
}

package commission

import "github.com/google/uuid"

// Role describes how an agent participated in a transaction.
type Role string

const (
	RoleSolo    Role = "solo"
	RoleListing Role = "listing"
	RoleSelling Role = "selling"
	RoleOther   Role = "other"
)

// Share is one agent's portion of a completed transaction's commission.
type Share struct {
	AgentID     uuid.UUID
	AmountMinor int64
}

// AgencyPortion is the company's retained half of a commission, always the
// floor so the agent side keeps any odd minor unit.
func AgencyPortion(totalMinor int64) int64 {
	return totalMinor / 2
}

// CompletionSplit allocates a commission at the moment a transaction
// completes: the agency takes the floor half, the agents collectively take
// the remainder. A single-agent deal gets one share for the full agent
// portion; otherwise the portion is halved with the odd minor unit going to
// the listing agent. agency + sum(shares) == totalMinor for any
// non-negative total.
func CompletionSplit(totalMinor int64, listingAgentID, sellingAgentID uuid.UUID) (agency int64, shares []Share) {
	agency = AgencyPortion(totalMinor)
	agentPortion := totalMinor - agency

	if listingAgentID == sellingAgentID {
		return agency, []Share{{AgentID: listingAgentID, AmountMinor: agentPortion}}
	}

	half := agentPortion / 2
	remainder := agentPortion - half*2

	return agency, []Share{
		{AgentID: listingAgentID, AmountMinor: half + remainder},
		{AgentID: sellingAgentID, AmountMinor: half},
	}
}

// EarningsSplit recomputes an agent's take for the earnings report. It does
// not read persisted shares and its remainder rounding intentionally differs
// from CompletionSplit: a split deal rounds the listing agent down and the
// selling agent up. The two policies are kept separate on purpose; do not
// fold one into the other.
func EarningsSplit(totalMinor int64, role Role) int64 {
	agentPortion := totalMinor - AgencyPortion(totalMinor)

	switch role {
	case RoleSolo:
		return agentPortion
	case RoleListing:
		return agentPortion / 2
	case RoleSelling:
		return agentPortion - agentPortion/2
	}

	return 0
}

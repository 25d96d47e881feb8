package transaction

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/realty/internal/commission"
	"github.com/MrJamesThe3rd/realty/internal/transaction"
)

type transactionResponse struct {
	ID               uuid.UUID  `json:"id"`
	UserID           uuid.UUID  `json:"userId"`
	PropertyID       string     `json:"propertyId"`
	PropertyType     string     `json:"propertyType"`
	GrossPrice       int64      `json:"grossPrice"`
	CommissionRate   int        `json:"commissionRate"`
	CommissionAmount int64      `json:"commissionAmount"`
	Currency         string     `json:"currency"`
	Stage            string     `json:"stage"`
	ListingAgentID   uuid.UUID  `json:"listingAgentId"`
	SellingAgentID   uuid.UUID  `json:"sellingAgentId"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        *time.Time `json:"updatedAt,omitempty"`
}

type listResponse struct {
	Items    []transactionResponse `json:"items"`
	Total    int                   `json:"total"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"pageSize"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:               tx.ID,
		UserID:           tx.UserID,
		PropertyID:       tx.PropertyID,
		PropertyType:     string(tx.PropertyType),
		GrossPrice:       tx.GrossPrice,
		CommissionRate:   tx.CommissionRate,
		CommissionAmount: tx.CommissionAmount,
		Currency:         tx.Currency,
		Stage:            string(tx.Stage),
		ListingAgentID:   tx.ListingAgentID,
		SellingAgentID:   tx.SellingAgentID,
		CreatedAt:        tx.CreatedAt,
		UpdatedAt:        tx.UpdatedAt,
	}
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}

type shareResponse struct {
	AgentID uuid.UUID `json:"agentId"`
	Amount  int64     `json:"amount"`
}

type breakdownResponse struct {
	Agency int64           `json:"agency"`
	Agents []shareResponse `json:"agents"`
}

type advanceResponse struct {
	ID        uuid.UUID          `json:"id"`
	Stage     string             `json:"stage"`
	Breakdown *breakdownResponse `json:"breakdown,omitempty"`
}

func toAdvanceResponse(result *transaction.AdvanceResult) advanceResponse {
	resp := advanceResponse{ID: result.ID, Stage: string(result.Stage)}

	if result.Breakdown != nil {
		agents := make([]shareResponse, len(result.Breakdown.Agents))
		for i, s := range result.Breakdown.Agents {
			agents[i] = shareResponse{AgentID: s.AgentID, Amount: s.AmountMinor}
		}

		resp.Breakdown = &breakdownResponse{Agency: result.Breakdown.Agency, Agents: agents}
	}

	return resp
}

type breakdownAgentResponse struct {
	AgentID     uuid.UUID       `json:"agentId"`
	Name        *string         `json:"name"`
	Role        commission.Role `json:"role"`
	AmountMinor int64           `json:"amountMinor"`
}

type breakdownViewResponse struct {
	TransactionID   uuid.UUID                `json:"transactionId"`
	TotalCommission int64                    `json:"totalCommission"`
	Agency          int64                    `json:"agency"`
	Currency        string                   `json:"currency"`
	Agents          []breakdownAgentResponse `json:"agents"`
}

func toBreakdownResponse(view *transaction.BreakdownView) breakdownViewResponse {
	agents := make([]breakdownAgentResponse, len(view.Agents))
	for i, a := range view.Agents {
		agents[i] = breakdownAgentResponse{
			AgentID:     a.AgentID,
			Name:        a.Name,
			Role:        a.Role,
			AmountMinor: a.AmountMinor,
		}
	}

	return breakdownViewResponse{
		TransactionID:   view.TransactionID,
		TotalCommission: view.TotalCommission,
		Agency:          view.Agency,
		Currency:        view.Currency,
		Agents:          agents,
	}
}

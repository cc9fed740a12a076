package dto

// DepositRequest represents the body of POST /api/v1/deposits
type DepositRequest struct {
	// Amount is a decimal string to keep the full precision, e.g. "250.500000"
	Amount      string         `json:"amount" binding:"required"`
	Source      string         `json:"source" binding:"required"`
	SourceID    *string        `json:"source_id,omitempty"`
	Description *string        `json:"description,omitempty"`
	TxReference *string        `json:"tx_reference,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// ClaimRequest represents the body of POST /api/v1/distributions/:id/claims
type ClaimRequest struct {
	WalletAddress string `json:"wallet_address" binding:"required"`
}

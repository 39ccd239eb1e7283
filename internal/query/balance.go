package query

// BalanceResponse represents one holder's balance in a single asset.
type BalanceResponse struct {
	Owner string `json:"owner"`
	Asset string `json:"asset"`
	Units int64  `json:"units"` // fixed-point, asset precision

	// Metadata
	AsOfSequence int64 `json:"as_of_sequence"` // last projected command sequence
}

// HoldingResponse is one row of an owner's full holdings listing.
type HoldingResponse struct {
	Asset string `json:"asset"`
	Units int64  `json:"units"`
}

// HoldingsResponse lists every asset an owner holds a record in.
type HoldingsResponse struct {
	Owner        string            `json:"owner"`
	Holdings     []HoldingResponse `json:"holdings"`
	AsOfSequence int64             `json:"as_of_sequence"`
}

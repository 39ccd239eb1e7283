package query

// SupplyResponse represents the circulating supply of one asset.
type SupplyResponse struct {
	Asset          string `json:"asset"`
	SupplyUnits    int64  `json:"supply_units"`
	MaxSupplyUnits int64  `json:"max_supply_units"`
	Precision      uint32  `json:"precision"`
	Issuer         string `json:"issuer"`
	AsOfSequence   int64  `json:"as_of_sequence"`
}

// BlacklistEntry is one blocked account.
type BlacklistEntry struct {
	Account       string `json:"account"`
	SinceSequence int64  `json:"since_sequence"`
}

// HistoryEntry represents one ledger entry for API queries.
type HistoryEntry struct {
	Sequence    int64  `json:"sequence"`
	Position    int32  `json:"position"`
	Account     string `json:"account"`
	Asset       string `json:"asset"`
	Delta       int64  `json:"delta"`
	Kind        string `json:"kind"`
	CommandType string `json:"command_type"`
	CommandID   string `json:"command_id"`
	Actor       string `json:"actor"`
	Timestamp   int64  `json:"timestamp"` // microseconds
}

// IntegrityReport is the result of an integrity verification check.
type IntegrityReport struct {
	IsHealthy       bool             `json:"is_healthy"`
	HashChainBreaks []int64          `json:"hash_chain_breaks,omitempty"`
	SupplyMismatch  []SupplyMismatch `json:"supply_mismatch,omitempty"`
}

// SupplyMismatch is an asset whose projected balances exceed its supply.
type SupplyMismatch struct {
	Asset       string `json:"asset"`
	HeldUnits   int64  `json:"held_units"`
	SupplyUnits int64  `json:"supply_units"`
}

package ingestion

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"TokenLedger/internal/asset"
	"TokenLedger/internal/command"
)

// SymbolRegistry resolves asset codes on the wire to their full symbols.
// Quantities travel as decimal strings ("5.00") plus a code; the registry
// supplies the precision so parsing can be exact.
type SymbolRegistry map[string]asset.Symbol

func (r SymbolRegistry) Resolve(code string) (asset.Symbol, error) {
	sym, ok := r[code]
	if !ok {
		return asset.Symbol{}, fmt.Errorf("unknown asset code %q", code)
	}
	return sym, nil
}

// Parser converts RawCommands (JSON bytes + command type string) into
// typed commands. The ingestion shell validates, parses, and converts
// before anything reaches the deterministic core.
type Parser struct {
	registry SymbolRegistry
}

func NewParser(registry SymbolRegistry) *Parser {
	return &Parser{registry: registry}
}

// Parse dispatches on the command type string from the subject mapping.
func (p *Parser) Parse(raw RawCommand, commandType string) (command.Command, error) {
	switch commandType {
	case "Transfer":
		return p.parseTransfer(raw)
	case "Burn":
		return p.parseBurn(raw)
	case "Swap":
		return p.parseSwap(raw)
	case "Close":
		return p.parseClose(raw)
	case "CloseAll":
		return p.parseCloseAll(raw)
	case "SetAuthorization":
		return p.parseSetAuthorization(raw)
	default:
		return nil, fmt.Errorf("unknown command type: %s", commandType)
	}
}

// --- JSON wire formats ---
// These structs represent the JSON payloads received from NATS.
// Field names use snake_case to match upstream producers.

type baseJSON struct {
	CommandID   string `json:"command_id"`
	Actor       string `json:"actor"`
	Sequence    int64  `json:"sequence"`
	TimestampUs int64  `json:"timestamp_us"`
}

func (p *Parser) parseBase(j baseJSON, source string) (command.Base, error) {
	commandID, err := uuid.Parse(j.CommandID)
	if err != nil {
		return command.Base{}, fmt.Errorf("parse command_id: %w", err)
	}
	if j.Actor == "" {
		return command.Base{}, fmt.Errorf("missing actor")
	}
	return command.Base{
		CommandID: commandID,
		Issuer:    j.Actor,
		Source:    source,
		Sequence:  j.Sequence,
		Timestamp: time.UnixMicro(j.TimestampUs),
	}, nil
}

func (p *Parser) parseQuantity(quantity, code string) (asset.Amount, error) {
	sym, err := p.registry.Resolve(code)
	if err != nil {
		return asset.Amount{}, err
	}
	return asset.ParseAmount(quantity, sym)
}

type transferJSON struct {
	baseJSON
	From     string `json:"from"`
	To       string `json:"to"`
	Quantity string `json:"quantity"`
	Asset    string `json:"asset"`
	Memo     string `json:"memo,omitempty"`
}

func (p *Parser) parseTransfer(raw RawCommand) (*command.Transfer, error) {
	var j transferJSON
	if err := json.Unmarshal(raw.Data, &j); err != nil {
		return nil, fmt.Errorf("parse Transfer: %w", err)
	}
	base, err := p.parseBase(j.baseJSON, raw.Source)
	if err != nil {
		return nil, fmt.Errorf("parse Transfer: %w", err)
	}
	quantity, err := p.parseQuantity(j.Quantity, j.Asset)
	if err != nil {
		return nil, fmt.Errorf("parse Transfer quantity: %w", err)
	}
	return &command.Transfer{
		Base:     base,
		From:     j.From,
		To:       j.To,
		Quantity: quantity,
		Memo:     j.Memo,
	}, nil
}

type burnJSON struct {
	baseJSON
	From     string `json:"from"`
	Quantity string `json:"quantity"`
	Asset    string `json:"asset"`
	Memo     string `json:"memo,omitempty"`
}

func (p *Parser) parseBurn(raw RawCommand) (*command.Burn, error) {
	var j burnJSON
	if err := json.Unmarshal(raw.Data, &j); err != nil {
		return nil, fmt.Errorf("parse Burn: %w", err)
	}
	base, err := p.parseBase(j.baseJSON, raw.Source)
	if err != nil {
		return nil, fmt.Errorf("parse Burn: %w", err)
	}
	quantity, err := p.parseQuantity(j.Quantity, j.Asset)
	if err != nil {
		return nil, fmt.Errorf("parse Burn quantity: %w", err)
	}
	return &command.Burn{
		Base:     base,
		From:     j.From,
		Quantity: quantity,
		Memo:     j.Memo,
	}, nil
}

type swapJSON struct {
	baseJSON
	Account string `json:"account"`
	Memo    string `json:"memo,omitempty"`
}

func (p *Parser) parseSwap(raw RawCommand) (*command.Swap, error) {
	var j swapJSON
	if err := json.Unmarshal(raw.Data, &j); err != nil {
		return nil, fmt.Errorf("parse Swap: %w", err)
	}
	base, err := p.parseBase(j.baseJSON, raw.Source)
	if err != nil {
		return nil, fmt.Errorf("parse Swap: %w", err)
	}
	if j.Account == "" {
		return nil, fmt.Errorf("parse Swap: missing account")
	}
	return &command.Swap{
		Base:    base,
		Account: j.Account,
		Memo:    j.Memo,
	}, nil
}

type closeJSON struct {
	baseJSON
	Owner string `json:"owner"`
	Asset string `json:"asset,omitempty"`
}

func (p *Parser) parseClose(raw RawCommand) (*command.Close, error) {
	var j closeJSON
	if err := json.Unmarshal(raw.Data, &j); err != nil {
		return nil, fmt.Errorf("parse Close: %w", err)
	}
	base, err := p.parseBase(j.baseJSON, raw.Source)
	if err != nil {
		return nil, fmt.Errorf("parse Close: %w", err)
	}
	if _, err := p.registry.Resolve(j.Asset); err != nil {
		return nil, fmt.Errorf("parse Close: %w", err)
	}
	return &command.Close{
		Base:  base,
		Owner: j.Owner,
		Code:  j.Asset,
	}, nil
}

func (p *Parser) parseCloseAll(raw RawCommand) (*command.CloseAll, error) {
	var j closeJSON
	if err := json.Unmarshal(raw.Data, &j); err != nil {
		return nil, fmt.Errorf("parse CloseAll: %w", err)
	}
	base, err := p.parseBase(j.baseJSON, raw.Source)
	if err != nil {
		return nil, fmt.Errorf("parse CloseAll: %w", err)
	}
	return &command.CloseAll{
		Base:  base,
		Owner: j.Owner,
	}, nil
}

type authorizeJSON struct {
	baseJSON
	Account    string `json:"account"`
	Authorized bool   `json:"authorized"`
}

func (p *Parser) parseSetAuthorization(raw RawCommand) (*command.SetAuthorization, error) {
	var j authorizeJSON
	if err := json.Unmarshal(raw.Data, &j); err != nil {
		return nil, fmt.Errorf("parse SetAuthorization: %w", err)
	}
	base, err := p.parseBase(j.baseJSON, raw.Source)
	if err != nil {
		return nil, fmt.Errorf("parse SetAuthorization: %w", err)
	}
	if j.Account == "" {
		return nil, fmt.Errorf("parse SetAuthorization: missing account")
	}
	return &command.SetAuthorization{
		Base:       base,
		Account:    j.Account,
		Authorized: j.Authorized,
	}, nil
}

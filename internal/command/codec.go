package command

import (
	"encoding/json"
	"fmt"
)

// Encode serializes a command for the operation log payload column.
func Encode(cmd Command) ([]byte, error) {
	return json.Marshal(cmd)
}

// Decode reconstructs a typed command from a stored payload. Used during
// startup replay of the operation log.
func Decode(t Type, data []byte) (Command, error) {
	var cmd Command
	switch t {
	case TypeTransfer:
		cmd = &Transfer{}
	case TypeBurn:
		cmd = &Burn{}
	case TypeSwap:
		cmd = &Swap{}
	case TypeClose:
		cmd = &Close{}
	case TypeCloseAll:
		cmd = &CloseAll{}
	case TypeSetAuthorization:
		cmd = &SetAuthorization{}
	default:
		return nil, fmt.Errorf("unknown command type: %v", t)
	}
	if err := json.Unmarshal(data, cmd); err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", t, err)
	}
	return cmd, nil
}

// TypeFromString maps a stored command_type column back to its Type.
func TypeFromString(s string) Type {
	switch s {
	case "Transfer":
		return TypeTransfer
	case "Burn":
		return TypeBurn
	case "Swap":
		return TypeSwap
	case "Close":
		return TypeClose
	case "CloseAll":
		return TypeCloseAll
	case "SetAuthorization":
		return TypeSetAuthorization
	default:
		return TypeUnknown
	}
}

package source

import (
	eng "github.com/reoring/tinydot/internal/engine"
)

// DecodeJSON parses data into plain maps, sequences and scalars.
// Errors from the underlying tokenizer are returned as is.
func DecodeJSON(data []byte, mode NumberMode) (any, error) {
	return eng.DecodeAny(CurrentJSONDriver().NewBytes(data), mode.conv())
}

// DecodeJSONOrdered parses data keeping object keys in document order.
func DecodeJSONOrdered(data []byte, mode NumberMode) (any, error) {
	return eng.DecodeOrdered(CurrentJSONDriver().NewBytes(data), mode.conv())
}

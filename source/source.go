// Package source parses JSON, YAML and CSV text into raw values: mappings,
// sequences ([]any) and scalars.
//
// Each format has two decoders. The plain variant returns map[string]any
// objects; the Ordered variant returns ordered.Map objects that keep the key
// order and duplicate keys of the document.
//
// JSON is tokenized by a pluggable JSONDriver. The default driver is backed
// by goccy/go-json; StdJSONDriver switches to encoding/json.
package source

import (
	"sync"

	eng "github.com/reoring/tinydot/internal/engine"
	"github.com/reoring/tinydot/source/gojson"
	"github.com/reoring/tinydot/source/stdjson"
)

// NumberMode dictates how JSON numbers are represented.
type NumberMode int

const (
	NumberJSONNumber NumberMode = iota // Preserve json.Number (default).
	NumberFloat64                      // Parse into float64 (with potential precision loss).
)

func (m NumberMode) conv() eng.NumberConv {
	if m == NumberFloat64 {
		return eng.Float64
	}
	return eng.JSONNumber
}

// Token kinds and token sources are shared with the internal engine so
// drivers outside this module can be plugged in.
type (
	Token       = eng.Token
	TokenKind   = eng.Kind
	TokenSource = eng.TokenSource
)

const (
	TokenBeginObject = eng.KindBeginObject
	TokenEndObject   = eng.KindEndObject
	TokenBeginArray  = eng.KindBeginArray
	TokenEndArray    = eng.KindEndArray
	TokenKey         = eng.KindKey
	TokenString      = eng.KindString
	TokenNumber      = eng.KindNumber
	TokenBool        = eng.KindBool
	TokenNull        = eng.KindNull
)

// ErrTrailingData is returned when JSON input has content after its root value.
var ErrTrailingData = eng.ErrTrailingData

// JSONDriver turns JSON bytes into a token stream.
type JSONDriver interface {
	NewBytes(b []byte) TokenSource
	Name() string
}

var (
	jsonDriverMu      sync.RWMutex
	currentJSONDriver JSONDriver = goJSONDriver{}
)

// SetJSONDriver replaces the global JSON driver; nil values are ignored.
func SetJSONDriver(d JSONDriver) {
	if d == nil {
		return
	}
	jsonDriverMu.Lock()
	currentJSONDriver = d
	jsonDriverMu.Unlock()
}

// UseDefaultJSONDriver restores the go-json backed driver.
func UseDefaultJSONDriver() {
	jsonDriverMu.Lock()
	currentJSONDriver = goJSONDriver{}
	jsonDriverMu.Unlock()
}

// CurrentJSONDriver returns the driver used by the JSON decoders.
func CurrentJSONDriver() JSONDriver {
	jsonDriverMu.RLock()
	d := currentJSONDriver
	jsonDriverMu.RUnlock()
	return d
}

// GoJSONDriver returns the default driver backed by goccy/go-json.
func GoJSONDriver() JSONDriver { return goJSONDriver{} }

// StdJSONDriver returns a driver backed by encoding/json.
func StdJSONDriver() JSONDriver { return stdJSONDriver{} }

type goJSONDriver struct{}

func (goJSONDriver) NewBytes(b []byte) TokenSource { return gojson.NewBytes(b) }
func (goJSONDriver) Name() string                  { return "go-json" }

type stdJSONDriver struct{}

func (stdJSONDriver) NewBytes(b []byte) TokenSource { return stdjson.NewBytes(b) }
func (stdJSONDriver) Name() string                  { return "encoding/json" }

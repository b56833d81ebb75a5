package engine

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"

	"github.com/reoring/tinydot/ordered"
)

// Kind represents token kinds from a generic source.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

// Token represents a streaming token with approximate input offset.
type Token struct {
	Kind   Kind
	String string
	Number string
	Bool   bool
	Offset int64
}

// TokenSource is a minimal interface required by the engine.
type TokenSource interface {
	NextToken() (Token, error)
	Location() int64
}

// ErrTrailingData is returned when a document has content after its root value.
var ErrTrailingData = errors.New("engine: unexpected data after top-level value")

// NumberConv turns the textual form of a JSON number into a Go value.
type NumberConv func(string) (any, error)

// JSONNumber keeps numbers as json.Number.
func JSONNumber(s string) (any, error) { return json.Number(s), nil }

// Float64 parses numbers as float64.
func Float64(s string) (any, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return f, nil
}

type decoder struct {
	src     TokenSource
	conv    NumberConv
	ordered bool
}

// DecodeAny builds a value from src using plain map[string]any objects.
// Duplicate keys keep the last value.
func DecodeAny(src TokenSource, conv NumberConv) (any, error) {
	return decoder{src: src, conv: conv}.root()
}

// DecodeOrdered builds a value from src using ordered.Map objects, keeping
// keys in document order and duplicates as separate pairs.
func DecodeOrdered(src TokenSource, conv NumberConv) (any, error) {
	return decoder{src: src, conv: conv, ordered: true}.root()
}

func (d decoder) root() (any, error) {
	if d.conv == nil {
		d.conv = JSONNumber
	}
	tok, err := d.src.NextToken()
	if err != nil {
		return nil, err
	}
	v, err := d.value(tok)
	if err != nil {
		return nil, err
	}
	if _, err := d.src.NextToken(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, ErrTrailingData
	}
	return v, nil
}

func (d decoder) value(tok Token) (any, error) {
	switch tok.Kind {
	case KindBeginObject:
		return d.object()
	case KindBeginArray:
		return d.array()
	case KindString:
		return tok.String, nil
	case KindNumber:
		return d.conv(tok.Number)
	case KindBool:
		return tok.Bool, nil
	case KindNull:
		return nil, nil
	default:
		return nil, io.ErrUnexpectedEOF
	}
}

func (d decoder) object() (any, error) {
	var (
		plain map[string]any
		pairs ordered.Map
	)
	if d.ordered {
		pairs = ordered.Map{}
	} else {
		plain = make(map[string]any)
	}
	for {
		tok, err := d.src.NextToken()
		if err != nil {
			return nil, unexpected(err)
		}
		if tok.Kind == KindEndObject {
			if d.ordered {
				return pairs, nil
			}
			return plain, nil
		}
		if tok.Kind != KindKey {
			return nil, io.ErrUnexpectedEOF
		}
		vt, err := d.src.NextToken()
		if err != nil {
			return nil, unexpected(err)
		}
		v, err := d.value(vt)
		if err != nil {
			return nil, err
		}
		if d.ordered {
			pairs = append(pairs, ordered.Pair{Key: tok.String, Value: v})
		} else {
			plain[tok.String] = v
		}
	}
}

func (d decoder) array() (any, error) {
	arr := []any{}
	for {
		tok, err := d.src.NextToken()
		if err != nil {
			return nil, unexpected(err)
		}
		if tok.Kind == KindEndArray {
			return arr, nil
		}
		v, err := d.value(tok)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
}

// unexpected maps a premature EOF inside a container to io.ErrUnexpectedEOF.
func unexpected(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

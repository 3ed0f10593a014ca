package builder

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/dhamidi/gbnf/grammar"
)

// coerce maps a plain Go value onto the component that matches exactly that
// value. Containers receive the whitespace references so their grammars stay
// formatting-flexible.
func coerce(value any, itemWS, keyWS grammar.Expr) (Component, error) {
	switch v := value.(type) {
	case nil:
		return JSONNullLiteral{}, nil
	case bool:
		return JSONBooleanLiteral{Value: v}, nil
	case int:
		return JSONIntegerLiteral{Value: int64(v)}, nil
	case int64:
		return JSONIntegerLiteral{Value: v}, nil
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) || math.IsNaN(v) {
			return nil, fmt.Errorf("%w: non-integral number %v is not supported", grammar.ErrInvalidParameter, v)
		}
		return JSONIntegerLiteral{Value: int64(v)}, nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return nil, fmt.Errorf("%w: non-integral number %q is not supported", grammar.ErrInvalidParameter, v.String())
		}
		return JSONIntegerLiteral{Value: n}, nil
	case string:
		return JSONStringLiteral{Value: v, EnsureASCII: true}, nil
	case []any:
		return NewJSONArrayLiteral(v, itemWS, keyWS), nil
	case map[string]any:
		return NewJSONObject(v, itemWS, keyWS), nil
	default:
		return nil, fmt.Errorf("%w: cannot build a JSON grammar for %T", grammar.ErrInvalidParameter, value)
	}
}

// JSONNullLiteral matches the JSON null literal.
type JSONNullLiteral struct{}

func (JSONNullLiteral) Grammar(ctx *grammar.Context) grammar.Expr {
	return grammar.NewLiteral("null")
}

// JSONBoolean matches either JSON boolean value.
type JSONBoolean struct{}

func (JSONBoolean) Grammar(ctx *grammar.Context) grammar.Expr {
	return ctx.Alternation([]grammar.Expr{
		grammar.NewLiteral("true"),
		grammar.NewLiteral("false"),
	}, grammar.One)
}

// JSONBooleanLiteral matches one specific JSON boolean value.
type JSONBooleanLiteral struct {
	Value bool
}

func (c JSONBooleanLiteral) Grammar(ctx *grammar.Context) grammar.Expr {
	if c.Value {
		return grammar.NewLiteral("true")
	}
	return grammar.NewLiteral("false")
}

// JSONIntegerLiteral matches one specific JSON integer value.
type JSONIntegerLiteral struct {
	Value int64
}

func (c JSONIntegerLiteral) Grammar(ctx *grammar.Context) grammar.Expr {
	return grammar.NewLiteral(strconv.FormatInt(c.Value, 10))
}

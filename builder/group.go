package builder

import (
	"sort"

	"github.com/dhamidi/gbnf/grammar"
)

// groupComponent carries the whitespace references shared by all container
// components.
type groupComponent struct {
	itemWS grammar.Expr
	keyWS  grammar.Expr
}

func (g *groupComponent) whitespace() (itemWS, keyWS grammar.Expr) {
	return g.itemWS, g.keyWS
}

func (g *groupComponent) setWhitespace(itemWS, keyWS grammar.Expr) {
	g.itemWS = itemWS
	g.keyWS = keyWS
}

// itemGrammar produces the grammar for one nested value, recursing through
// components and coercing plain values.
func (g *groupComponent) itemGrammar(ctx *grammar.Context, value any) grammar.Expr {
	if e, ok := value.(grammar.Expr); ok {
		return grammar.Copy(e)
	}
	if c, ok := value.(wsComponent); ok {
		c.setWhitespace(g.itemWS, g.keyWS)
		return c.Grammar(ctx)
	}
	if c, ok := value.(Component); ok {
		return c.Grammar(ctx)
	}
	c, err := coerce(value, g.itemWS, g.keyWS)
	if err != nil {
		ctx.Report(err)
		return nil
	}
	return c.Grammar(ctx)
}

// JSONArray matches a JSON array whose items all conform to one value form
// and whose length falls within N.
type JSONArray struct {
	groupComponent
	value any
	n     grammar.Quantifier
}

// NewJSONArray matches arrays of items shaped like value, with the item
// count bounded by n. The whitespace references may be nil for fully
// compact arrays.
func NewJSONArray(value any, n grammar.Quantifier, itemWS, keyWS grammar.Expr) *JSONArray {
	return &JSONArray{
		groupComponent: groupComponent{itemWS: itemWS, keyWS: keyWS},
		value:          value,
		n:              n,
	}
}

func (c *JSONArray) Grammar(ctx *grammar.Context) grammar.Expr {
	if c.n.Max == 0 {
		return grammar.NewLiteral("[]")
	}

	valueGrammar := c.itemGrammar(ctx, c.value)

	var body []grammar.Expr

	first := make([]grammar.Expr, 0, 2)
	if c.itemWS != nil {
		first = append(first, c.itemWS)
	}
	first = append(first, valueGrammar)
	body = append(body, ctx.Sequence(first, grammar.One))

	if c.n.Max == grammar.Unbounded || c.n.Max > 1 {
		rest := make([]grammar.Expr, 0, 3)
		rest = append(rest, grammar.NewLiteral(","))
		if c.itemWS != nil {
			rest = append(rest, c.itemWS)
		}
		rest = append(rest, grammar.Copy(valueGrammar))
		restCount := grammar.Quantifier{Min: 0, Max: c.n.Max}
		if c.n.Min > 0 {
			restCount.Min = c.n.Min - 1
		}
		if c.n.Max != grammar.Unbounded {
			restCount.Max = c.n.Max - 1
		}
		body = append(body, ctx.Sequence(rest, restCount))
	}
	if c.itemWS != nil {
		body = append(body, c.itemWS)
	}

	if c.n.Min == 0 {
		return ctx.Sequence([]grammar.Expr{
			grammar.NewLiteral("["),
			ctx.Sequence(body, grammar.Quantifier{Min: 0, Max: 1}),
			grammar.NewLiteral("]"),
		}, grammar.One)
	}
	subexprs := make([]grammar.Expr, 0, len(body)+2)
	subexprs = append(subexprs, grammar.NewLiteral("["))
	subexprs = append(subexprs, body...)
	subexprs = append(subexprs, grammar.NewLiteral("]"))
	return ctx.Sequence(subexprs, grammar.One)
}

// JSONArrayLiteral matches a JSON array with exactly the given values in
// order.
type JSONArrayLiteral struct {
	groupComponent
	values []any
}

// NewJSONArrayLiteral matches the array holding exactly values.
func NewJSONArrayLiteral(values []any, itemWS, keyWS grammar.Expr) *JSONArrayLiteral {
	return &JSONArrayLiteral{
		groupComponent: groupComponent{itemWS: itemWS, keyWS: keyWS},
		values:         values,
	}
}

func (c *JSONArrayLiteral) Grammar(ctx *grammar.Context) grammar.Expr {
	subexprs := []grammar.Expr{grammar.NewLiteral("[")}
	for i, value := range c.values {
		if i > 0 {
			subexprs = append(subexprs, grammar.NewLiteral(","))
		}
		if c.itemWS != nil {
			subexprs = append(subexprs, c.itemWS)
		}
		subexprs = append(subexprs, c.itemGrammar(ctx, value))
	}
	if c.itemWS != nil {
		subexprs = append(subexprs, c.itemWS)
	}
	subexprs = append(subexprs, grammar.NewLiteral("]"))
	return ctx.Sequence(subexprs, grammar.One)
}

// JSONMember is one key-value pair of a JSON object.
type JSONMember struct {
	Key   string
	Value any
}

// JSONObject matches a JSON object with exactly the given members in order.
type JSONObject struct {
	groupComponent
	members []JSONMember
}

// NewJSONObject matches the object holding exactly the members of value,
// ordered by key.
func NewJSONObject(value map[string]any, itemWS, keyWS grammar.Expr) *JSONObject {
	keys := make([]string, 0, len(value))
	for key := range value {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	members := make([]JSONMember, len(keys))
	for i, key := range keys {
		members[i] = JSONMember{Key: key, Value: value[key]}
	}
	return NewJSONObjectMembers(members, itemWS, keyWS)
}

// NewJSONObjectMembers matches the object holding exactly members, in the
// given order.
func NewJSONObjectMembers(members []JSONMember, itemWS, keyWS grammar.Expr) *JSONObject {
	return &JSONObject{
		groupComponent: groupComponent{itemWS: itemWS, keyWS: keyWS},
		members:        members,
	}
}

func (c *JSONObject) Grammar(ctx *grammar.Context) grammar.Expr {
	subexprs := []grammar.Expr{grammar.NewLiteral("{")}
	for i, member := range c.members {
		if i > 0 {
			subexprs = append(subexprs, grammar.NewLiteral(","))
		}
		if c.itemWS != nil {
			subexprs = append(subexprs, c.itemWS)
		}
		key := JSONStringLiteral{Value: member.Key, EnsureASCII: true}
		subexprs = append(subexprs, key.Grammar(ctx))
		subexprs = append(subexprs, grammar.NewLiteral(":"))
		if c.keyWS != nil {
			subexprs = append(subexprs, c.keyWS)
		}
		subexprs = append(subexprs, c.itemGrammar(ctx, member.Value))
	}
	if c.itemWS != nil {
		subexprs = append(subexprs, c.itemWS)
	}
	subexprs = append(subexprs, grammar.NewLiteral("}"))
	return ctx.Sequence(subexprs, grammar.One)
}

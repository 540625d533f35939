// Copyright © 2025 The Tanuki authors

package hostfn

// SlotSource records how a plan slot was filled.
type SlotSource uint8

// Possible SlotSource values.
const (
	// SlotEmpty marks a slot the binder has not filled.
	SlotEmpty SlotSource = iota
	// SlotPositional marks a slot filled by a call-site positional value.
	SlotPositional
	// SlotNamed marks a slot filled by a resolved named argument.
	SlotNamed
	// SlotDefault marks an omitted optional slot bound to its default.
	SlotDefault
)

var slotSourceStrings = []string{
	SlotEmpty:      "empty",
	SlotPositional: "positional",
	SlotNamed:      "named",
	SlotDefault:    "default",
}

func (s SlotSource) String() string {
	if s >= SlotSource(len(slotSourceStrings)) {
		return "INVALID"
	}
	return slotSourceStrings[s]
}

// Plan maps one call site's arguments onto a signature's parameter slots.
// Plans are transient per-call values; the dispatcher consumes a plan and
// nothing retains it after the call completes.
type Plan struct {
	sig     *Signature
	values  []interface{}
	sources []SlotSource
	tail    []interface{}
	block   Expr
}

// NumSlots returns the number of caller-facing parameter slots.
func (p *Plan) NumSlots() int {
	return len(p.values)
}

// Slot returns how user slot i was filled and the value bound to it.
func (p *Plan) Slot(i int) (SlotSource, interface{}) {
	return p.sources[i], p.values[i]
}

// Tail returns the collected variadic tail in call order.  A call that
// supplies no surplus positional values yields an empty tail.
func (p *Plan) Tail() []interface{} {
	return p.tail
}

// Block returns the block body bound to the plan, if any.
func (p *Plan) Block() Expr {
	return p.block
}

// Bind produces a binding plan mapping args onto the signature's parameter
// slots.  fun is the callable's display name used in binding errors.
//
// Named arguments are resolved first by linear scan over parameter names;
// a name matching no parameter fails with *UnknownArgumentError.  Remaining
// slots are filled positionally in declaration order, skipping slots already
// filled by name; omitted optional slots receive their declared defaults.
// Surplus positional values feed the variadic tail when one is declared and
// otherwise fail with *ArityError, as does a shortfall below the minimum
// required count.
func (sig *Signature) Bind(fun string, args Args) (*Plan, error) {
	plan := &Plan{
		sig:     sig,
		values:  make([]interface{}, sig.userCount),
		sources: make([]SlotSource, sig.userCount),
	}
	for _, na := range args.Named {
		i := sig.ParameterIndex(na.Name)
		if i < 0 {
			return nil, &UnknownArgumentError{Fun: fun, Name: na.Name}
		}
		// Duplicate named arguments resolve last-wins.
		plan.values[i] = na.Value
		plan.sources[i] = SlotNamed
	}
	pos := argParser{args: args.Positional}
	for i := 0; i < sig.userCount; i++ {
		if plan.sources[i] == SlotNamed {
			continue
		}
		if pos.IsEOF() {
			p := sig.userParam(i)
			if !p.Optional {
				return nil, &ArityError{
					Fun:   fun,
					NArgs: len(args.Positional),
					Min:   sig.minRequired,
					Max:   sig.arityMax(),
				}
			}
			plan.values[i] = p.Default
			plan.sources[i] = SlotDefault
			continue
		}
		plan.values[i] = pos.Advance()
		plan.sources[i] = SlotPositional
	}
	if sig.variadic {
		plan.tail = pos.Rest()
	} else if !pos.IsEOF() {
		return nil, &ArityError{
			Fun:   fun,
			NArgs: len(args.Positional),
			Min:   sig.minRequired,
			Max:   sig.arityMax(),
		}
	}
	if args.Block != nil && !sig.hasBlock {
		return nil, &UnexpectedBlockError{Fun: fun}
	}
	plan.block = args.Block
	return plan, nil
}

func (sig *Signature) arityMax() int {
	if sig.variadic {
		return -1
	}
	return sig.userCount
}

// argParser walks a call site's positional values in order.
type argParser struct {
	args []interface{}
	i    int
}

func (p *argParser) IsEOF() bool {
	return p.i >= len(p.args)
}

func (p *argParser) Advance() interface{} {
	v := p.args[p.i]
	p.i++
	return v
}

func (p *argParser) Rest() []interface{} {
	v := p.args[p.i:]
	p.i = len(p.args)
	return v
}

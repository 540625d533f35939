// Copyright © 2025 The Tanuki authors

/*
Package repl provides an interactive console for invoking registered host
functions.  Console input uses a small call grammar:

	call  := <fn> <arg>*
	arg   := <name> '=' <value> | <value>
	value := <string> | <number> | <list> | <symbol>
	list  := '[' <value>* ']'

The symbols true, false, and nil denote the corresponding values.  Any other
bare symbol is taken as string text.
*/
package repl

import (
	"fmt"
	"strconv"
	"strings"

	parsec "github.com/prataprc/goparsec"

	"github.com/tanukilang/tanuki/hostfn"
)

const (
	nodeInvalid nodeType = iota
	nodeTerm
	nodeList
	nodeNamed
	nodeCall
)

var nodeTypeStrings = []string{
	nodeInvalid: "INVALID",
	nodeTerm:    "TERM",
	nodeList:    "LIST",
	nodeNamed:   "NAMED",
	nodeCall:    "CALL",
}

type nodeType uint

func (t nodeType) String() string {
	if int(t) >= len(nodeTypeStrings) {
		return "INVALID"
	}
	return nodeTypeStrings[t]
}

// argument is one parsed argument value along with its source text.  The
// text is kept so expression parameters can receive the argument without
// evaluation.
type argument struct {
	val  interface{}
	text string
}

type namedArgument struct {
	name string
	arg  *argument
}

// Call is one parsed console command.
type Call struct {
	fn    string
	args  []*argument
	named []namedArgument
}

// Fn returns the name of the function being called.
func (c *Call) Fn() string {
	return c.fn
}

// Args renders the parsed arguments for fun.  Slots fun declares as
// expression parameters receive their source text as literal expression
// nodes instead of parsed values.  A nil fun yields plain values.
func (c *Call) Args(fun *hostfn.BoundFunction) hostfn.Args {
	var args hostfn.Args
	for i, a := range c.args {
		args.Positional = append(args.Positional, renderArg(fun, i, a))
	}
	for _, na := range c.named {
		i := -1
		if fun != nil {
			i = fun.ParameterIndex(na.name)
		}
		args.Named = append(args.Named, hostfn.NamedArg{
			Name:  na.name,
			Value: renderArg(fun, i, na.arg),
		})
	}
	return args
}

func renderArg(fun *hostfn.BoundFunction, i int, a *argument) interface{} {
	if fun != nil && fun.IsExpressionParameter(i) {
		return hostfn.Literal(a.text, nil)
	}
	return a.val
}

// ParseCall parses a single console command.
func ParseCall(line []byte) (*Call, error) {
	s := parsec.NewScanner(line)
	root, s := newCallParser()(s)
	_, s = s.SkipWS()
	if !s.Endof() {
		b, _ := s.Match(`.{1,16}`)
		if len(b) > 15 {
			b = append(b[:15:15], []byte("...")...)
		}
		return nil, fmt.Errorf("unexpected source text possibly starting: %s", b)
	}
	switch node := root.(type) {
	case *Call:
		return node, nil
	case error:
		return nil, node
	default:
		return nil, fmt.Errorf("invalid call syntax")
	}
}

func newCallParser() parsec.Parser {
	openB := parsec.Atom("[", "OPENB")
	closeB := parsec.Atom("]", "CLOSEB")
	eq := parsec.Atom("=", "EQ")
	decimal := parsec.Token(`[+-]?[0-9]+([.][0-9]+)?([eE][+-]?[0-9]+)?`, "DECIMAL")
	symbol := parsec.Token(`[\pL_][\pL0-9_:.?+*/-]*`, "SYMBOL")
	name := parsec.Token(`[\pL_][\pL0-9_-]*`, "NAME")
	term := parsec.OrdChoice(callNode(nodeTerm),
		parsec.String(),
		decimal,
		symbol, // symbol comes last because it swallows anything
	)
	var value parsec.Parser // forward declaration allows for recursive parsing
	list := parsec.And(callNode(nodeList), openB, parsec.Kleene(nil, &value), closeB)
	value = parsec.OrdChoice(nil, list, term)
	named := parsec.And(callNode(nodeNamed), name, eq, &value)
	arg := parsec.OrdChoice(nil, named, &value)
	return parsec.And(callNode(nodeCall), symbol, parsec.Kleene(nil, arg))
}

func callNode(t nodeType) parsec.Nodify {
	return func(nodes []parsec.ParsecNode) parsec.ParsecNode {
		return newNode(t, nodes)
	}
}

func newNode(typ nodeType, nodes []parsec.ParsecNode) parsec.ParsecNode {
	nodes, ok := flattenNodes(nodes)
	if len(nodes) == 0 {
		return nil
	}
	if !ok {
		// There is an error in the first position.
		return nodes[0]
	}
	switch typ {
	case nodeTerm:
		switch term := nodes[0].(type) {
		case string:
			return &argument{val: unquoteString(term), text: term}
		case *parsec.Terminal:
			switch term.Name {
			case "DECIMAL":
				if strings.ContainsAny(term.Value, ".eE") {
					f, err := strconv.ParseFloat(term.Value, 64)
					if err != nil {
						return fmt.Errorf("bad number: %v (%s)", err, term.Value)
					}
					return &argument{val: f, text: term.Value}
				}
				x, err := strconv.Atoi(term.Value)
				if err != nil {
					return fmt.Errorf("bad number: %v (%s)", err, term.Value)
				}
				return &argument{val: x, text: term.Value}
			case "SYMBOL":
				return &argument{val: symbolValue(term.Value), text: term.Value}
			}
		}
		return fmt.Errorf("invalid term: %v", nodes[0])
	case nodeList:
		// We don't want terminal parsec nodes '[' and ']'
		vals := []interface{}{}
		var texts []string
		for _, n := range nodes {
			if a, ok := n.(*argument); ok {
				vals = append(vals, a.val)
				texts = append(texts, a.text)
			}
		}
		return &argument{
			val:  vals,
			text: "[" + strings.Join(texts, " ") + "]",
		}
	case nodeNamed:
		name := nodes[0].(*parsec.Terminal)
		a, ok := nodes[2].(*argument)
		if !ok {
			return fmt.Errorf("invalid value for named argument %s", name.Value)
		}
		return namedArgument{name: name.Value, arg: a}
	case nodeCall:
		fn, ok := nodes[0].(*parsec.Terminal)
		if !ok {
			return fmt.Errorf("invalid function name: %v", nodes[0])
		}
		call := &Call{fn: fn.Value}
		for _, n := range nodes[1:] {
			switch n := n.(type) {
			case *argument:
				call.args = append(call.args, n)
			case namedArgument:
				call.named = append(call.named, n)
			}
		}
		return call
	default:
		panic(fmt.Sprintf("unknown nodeType: %s (%d)", typ, typ))
	}
}

func symbolValue(s string) interface{} {
	switch s {
	case "true":
		return true
	case "false":
		return false
	case "nil":
		return nil
	}
	return s
}

func unquoteString(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	s = strings.ReplaceAll(s, `\"`, `"`)
	s = strings.ReplaceAll(s, `\\`, `\`)
	return s
}

func flattenNodes(lis []parsec.ParsecNode) ([]parsec.ParsecNode, bool) {
	var nodes []parsec.ParsecNode
	for _, n := range lis {
		switch node := n.(type) {
		case error:
			return []parsec.ParsecNode{node}, false
		case []parsec.ParsecNode:
			clean, ok := flattenNodes(node)
			if !ok {
				return clean, false
			}
			nodes = append(nodes, clean...)
		default:
			nodes = append(nodes, node)
		}
	}
	return nodes, true
}

package rdf

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// NodeKind identifies the four closed cases of Node.
type NodeKind uint8

const (
	// NodeIRI is an absolute URI reference.
	NodeIRI NodeKind = iota
	// NodeBlankNamed is a blank node carrying a source-provided label.
	NodeBlankNamed
	// NodeBlankGen is a blank node whose identifier the parser generated.
	NodeBlankGen
	// NodeLiteral is a literal value.
	NodeLiteral
)

// Node is a tagged variant over IRI, BlankNamed, BlankGen and Literal.
// The interface is sealed to this package via the unexported isNode method;
// callers inspect values with Kind() and a type switch.
type Node interface {
	Kind() NodeKind
	String() string
	isNode()
}

// IRI is an absolute URI reference node.
type IRI struct {
	Text string
}

func (IRI) Kind() NodeKind  { return NodeIRI }
func (n IRI) String() string { return n.Text }
func (IRI) isNode()          {}

// BlankNamed is a blank node carrying the label the document gave it
// (without the leading "_:").
type BlankNamed struct {
	Label string
}

func (BlankNamed) Kind() NodeKind  { return NodeBlankNamed }
func (n BlankNamed) String() string { return "_:" + n.Label }
func (BlankNamed) isNode()          {}

// BlankGen is a blank node whose identifier the parser generated. Within a
// single parse, successive BlankGen values are strictly increasing.
type BlankGen struct {
	ID int
}

func (BlankGen) Kind() NodeKind  { return NodeBlankGen }
func (n BlankGen) String() string { return fmt.Sprintf("_:b%d", n.ID) }
func (BlankGen) isNode()          {}

// Literal wraps an LValue as a Node.
type Literal struct {
	Value LValue
}

func (Literal) Kind() NodeKind  { return NodeLiteral }
func (n Literal) String() string { return n.Value.String() }
func (Literal) isNode()          {}

// LValueKind identifies the three closed cases of LValue.
type LValueKind uint8

const (
	// LPlain is an untyped literal with no language tag.
	LPlain LValueKind = iota
	// LPlainLang is an untyped literal with a BCP-47-like language tag.
	LPlainLang
	// LTyped is a typed literal; Lexical is its canonical form.
	LTyped
)

// LValue is a tagged variant over Plain, PlainLang and Typed. Sealed to this
// package via the unexported isLValue method.
type LValue interface {
	Kind() LValueKind
	Lexical() string
	String() string
	isLValue()
}

// Plain is an untyped literal with no language tag.
type Plain struct {
	Lex string
}

func (Plain) Kind() LValueKind    { return LPlain }
func (l Plain) Lexical() string   { return l.Lex }
func (l Plain) String() string    { return strconv.Quote(l.Lex) }
func (Plain) isLValue()           {}

// PlainLang is an untyped literal carrying a BCP-47-like language tag. The
// tag is validated and normalised via golang.org/x/text/language at
// construction time (see NewPlainLang).
type PlainLang struct {
	Lex  string
	Lang string
}

func (PlainLang) Kind() LValueKind  { return LPlainLang }
func (l PlainLang) Lexical() string { return l.Lex }
func (l PlainLang) String() string  { return strconv.Quote(l.Lex) + "@" + l.Lang }
func (PlainLang) isLValue()         {}

// Typed is a typed literal. Lex is the canonical lexical form for Datatype
// (see NewTyped / typedL), not necessarily the literal's source text.
type Typed struct {
	Lex      string
	Datatype string
}

func (Typed) Kind() LValueKind    { return LTyped }
func (l Typed) Lexical() string   { return l.Lex }
func (l Typed) String() string    { return strconv.Quote(l.Lex) + "^^<" + l.Datatype + ">" }
func (Typed) isLValue()           {}

// Well-known namespace constants. Compile-time values; no global mutable
// state backs them.
const (
	nsRDF = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	nsXSD = "http://www.w3.org/2001/XMLSchema#"

	RDFType  = nsRDF + "type"
	RDFFirst = nsRDF + "first"
	RDFRest  = nsRDF + "rest"
	RDFNil   = nsRDF + "nil"

	XSDInteger = nsXSD + "integer"
	XSDDecimal = nsXSD + "decimal"
	XSDDouble  = nsXSD + "double"
	XSDBoolean = nsXSD + "boolean"
	XSDString  = nsXSD + "string"
)

// NewPlainLang constructs a PlainLang literal, validating and normalising
// lang via golang.org/x/text/language. A tag that fails to parse is a
// *SyntaxError.
func NewPlainLang(lex, lang string) (LValue, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, &SyntaxError{Message: fmt.Sprintf("invalid language tag %q: %v", lang, err), Offset: -1}
	}
	return PlainLang{Lex: lex, Lang: tag.String()}, nil
}

// NewTyped constructs a Typed literal, canonicalising lex for datatype via
// typedL.
func NewTyped(datatype, lex string) LValue {
	return Typed{Lex: typedL(datatype, lex), Datatype: datatype}
}

// typedL canonicalises lex for the given datatype IRI. For xsd:integer it
// strips a leading '+', strips leading zeros (keeping a single '0'), and
// collapses "-0" to "0". Every other datatype is left as-is: xsd:decimal,
// xsd:double and xsd:boolean are assumed already-canonical as produced by
// the grammar, and unrecognised datatypes are the identity.
func typedL(datatype, lex string) string {
	if datatype != XSDInteger {
		return lex
	}
	neg := false
	rest := lex
	switch {
	case strings.HasPrefix(rest, "+"):
		rest = rest[1:]
	case strings.HasPrefix(rest, "-"):
		neg = true
		rest = rest[1:]
	}
	rest = strings.TrimLeft(rest, "0")
	if rest == "" {
		rest = "0"
	}
	if rest == "0" {
		neg = false
	}
	if neg {
		return "-" + rest
	}
	return rest
}

// NewTriple constructs a Triple, validating its shape: the subject must be
// an IRI, BlankNamed or BlankGen, and the predicate must be an IRI. A
// violating shape is a *StructuralError — a programming error in the
// caller, not a recoverable parse failure.
func NewTriple(subject Node, predicate Node, object Node) Triple {
	switch subject.(type) {
	case IRI, BlankNamed, BlankGen:
	default:
		panic(&StructuralError{Message: fmt.Sprintf("triple subject must be IRI, BlankNamed or BlankGen, got %T", subject)})
	}
	predIRI, ok := predicate.(IRI)
	if !ok {
		panic(&StructuralError{Message: fmt.Sprintf("triple predicate must be IRI, got %T", predicate)})
	}
	return Triple{Subject: subject, Predicate: predIRI, Object: object}
}

// Triple is an ordered (subject, predicate, object) statement. Construct via
// NewTriple to enforce the shape invariant.
type Triple struct {
	Subject   Node
	Predicate IRI
	Object    Node
}

func (t Triple) String() string {
	return fmt.Sprintf("%s %s %s .", t.Subject, t.Predicate, t.Object)
}

// nodeRank orders the four Node cases: IRI < BlankNamed < BlankGen < Literal.
func nodeRank(n Node) int {
	switch n.Kind() {
	case NodeIRI:
		return 0
	case NodeBlankNamed:
		return 1
	case NodeBlankGen:
		return 2
	default:
		return 3
	}
}

// lvalueRank orders the three LValue cases: Plain < PlainLang < Typed.
func lvalueRank(l LValue) int {
	switch l.Kind() {
	case LPlain:
		return 0
	case LPlainLang:
		return 1
	default:
		return 2
	}
}

func cmpString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// CompareLValues implements a total order on LValue: Plain < PlainLang <
// Typed by kind; for PlainLang, language is primary and lexical form
// secondary; for Typed, lexical form is primary and datatype IRI secondary.
func CompareLValues(a, b LValue) int {
	ra, rb := lvalueRank(a), lvalueRank(b)
	if ra != rb {
		return cmpInt(ra, rb)
	}
	switch a.Kind() {
	case LPlain:
		return cmpString(a.(Plain).Lex, b.(Plain).Lex)
	case LPlainLang:
		av, bv := a.(PlainLang), b.(PlainLang)
		if c := cmpString(av.Lang, bv.Lang); c != 0 {
			return c
		}
		return cmpString(av.Lex, bv.Lex)
	default: // LTyped
		av, bv := a.(Typed), b.(Typed)
		if c := cmpString(av.Lex, bv.Lex); c != 0 {
			return c
		}
		return cmpString(av.Datatype, bv.Datatype)
	}
}

// CompareNodes implements a total order on Node: IRI < BlankNamed <
// BlankGen < Literal by kind, then by the kind-specific key.
func CompareNodes(a, b Node) int {
	ra, rb := nodeRank(a), nodeRank(b)
	if ra != rb {
		return cmpInt(ra, rb)
	}
	switch a.Kind() {
	case NodeIRI:
		return cmpString(a.(IRI).Text, b.(IRI).Text)
	case NodeBlankNamed:
		return cmpString(a.(BlankNamed).Label, b.(BlankNamed).Label)
	case NodeBlankGen:
		return cmpInt(a.(BlankGen).ID, b.(BlankGen).ID)
	default: // NodeLiteral
		return CompareLValues(a.(Literal).Value, b.(Literal).Value)
	}
}

// CompareTriples orders triples lexicographically by (subject, predicate,
// object); used by the isomorphism check's sort step.
func CompareTriples(a, b Triple) int {
	if c := CompareNodes(a.Subject, b.Subject); c != 0 {
		return c
	}
	if c := cmpString(a.Predicate.Text, b.Predicate.Text); c != 0 {
		return c
	}
	return CompareNodes(a.Object, b.Object)
}

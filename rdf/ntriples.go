package rdf

import (
	"fmt"
	"io"
	"strings"
)

// NTriples is not a supported core format; loadNTriples exists only so
// package tests can load an expected-graph fixture to compare a parsed
// Turtle graph against, without hand-building Triple values. It is
// unexported: no public NTriples parser is part of this module's surface.

// loadNTriples reads a line-based NTriples document (one triple per
// non-blank, non-comment line) and returns its triples in source order.
func loadNTriples(r io.Reader) ([]Triple, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &IOError{Message: "reading NTriples input", Err: err}
	}
	var triples []Triple
	for lineNo, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		t, err := parseNTriplesLine(line)
		if err != nil {
			return nil, fmt.Errorf("ntriples line %d: %w", lineNo+1, err)
		}
		triples = append(triples, t)
	}
	return triples, nil
}

type ntCursor struct {
	input string
	pos   int
}

func parseNTriplesLine(line string) (Triple, error) {
	c := &ntCursor{input: line}
	c.skipWS()
	subj, err := c.parseSubjectTerm()
	if err != nil {
		return Triple{}, err
	}
	c.skipWS()
	predText, err := c.parseIRIRefTerm()
	if err != nil {
		return Triple{}, err
	}
	c.skipWS()
	obj, err := c.parseObjectTerm()
	if err != nil {
		return Triple{}, err
	}
	c.skipWS()
	if !c.consumeByte('.') {
		return Triple{}, fmt.Errorf("expected '.' terminating NTriples statement")
	}
	return NewTriple(subj, IRI{Text: predText}, obj), nil
}

func (c *ntCursor) skipWS() {
	for c.pos < len(c.input) && (c.input[c.pos] == ' ' || c.input[c.pos] == '\t') {
		c.pos++
	}
}

func (c *ntCursor) peekByte() (byte, bool) {
	if c.pos >= len(c.input) {
		return 0, false
	}
	return c.input[c.pos], true
}

func (c *ntCursor) consumeByte(b byte) bool {
	if v, ok := c.peekByte(); ok && v == b {
		c.pos++
		return true
	}
	return false
}

func (c *ntCursor) parseSubjectTerm() (Node, error) {
	b, ok := c.peekByte()
	if !ok {
		return nil, fmt.Errorf("unexpected end of line, expected subject")
	}
	switch b {
	case '<':
		iri, err := c.parseIRIRefTerm()
		if err != nil {
			return nil, err
		}
		return IRI{Text: iri}, nil
	case '_':
		return c.parseBlankNodeTerm()
	default:
		return nil, fmt.Errorf("unexpected character %q, expected subject", b)
	}
}

func (c *ntCursor) parseObjectTerm() (Node, error) {
	b, ok := c.peekByte()
	if !ok {
		return nil, fmt.Errorf("unexpected end of line, expected object")
	}
	switch b {
	case '<':
		iri, err := c.parseIRIRefTerm()
		if err != nil {
			return nil, err
		}
		return IRI{Text: iri}, nil
	case '_':
		return c.parseBlankNodeTerm()
	case '"':
		return c.parseLiteralTerm()
	default:
		return nil, fmt.Errorf("unexpected character %q, expected object", b)
	}
}

func (c *ntCursor) parseIRIRefTerm() (string, error) {
	if !c.consumeByte('<') {
		return "", fmt.Errorf("expected '<' to start IRI reference")
	}
	start := c.pos
	for {
		b, ok := c.peekByte()
		if !ok {
			return "", fmt.Errorf("unterminated IRI reference")
		}
		if b == '>' {
			text := c.input[start:c.pos]
			c.pos++
			return text, nil
		}
		c.pos++
	}
}

func (c *ntCursor) parseBlankNodeTerm() (Node, error) {
	if !strings.HasPrefix(c.input[c.pos:], "_:") {
		return nil, fmt.Errorf("expected '_:' blank node label")
	}
	c.pos += 2
	start := c.pos
	for {
		b, ok := c.peekByte()
		if !ok || b == ' ' || b == '\t' || b == '.' {
			break
		}
		c.pos++
	}
	if c.pos == start {
		return nil, fmt.Errorf("empty blank node label")
	}
	return BlankNamed{Label: c.input[start:c.pos]}, nil
}

func (c *ntCursor) parseLiteralTerm() (Node, error) {
	if !c.consumeByte('"') {
		return nil, fmt.Errorf("expected '\"' to start string literal")
	}
	var sb strings.Builder
	for {
		b, ok := c.peekByte()
		if !ok {
			return nil, fmt.Errorf("unterminated string literal")
		}
		if b == '"' {
			c.pos++
			break
		}
		if b == '\\' {
			nb, nok := func() (byte, bool) {
				if c.pos+1 >= len(c.input) {
					return 0, false
				}
				return c.input[c.pos+1], true
			}()
			if !nok {
				return nil, fmt.Errorf("unterminated escape in string literal")
			}
			switch nb {
			case 't':
				sb.WriteByte('\t')
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case '"':
				sb.WriteByte('"')
			case '\\':
				sb.WriteByte('\\')
			default:
				return nil, fmt.Errorf("invalid escape '\\%c' in string literal", nb)
			}
			c.pos += 2
			continue
		}
		sb.WriteByte(b)
		c.pos++
	}
	lex := sb.String()
	if c.consumeByte('^') {
		if !c.consumeByte('^') {
			return nil, fmt.Errorf("expected '^^' before datatype IRI")
		}
		dt, err := c.parseIRIRefTerm()
		if err != nil {
			return nil, err
		}
		return Literal{Value: NewTyped(dt, lex)}, nil
	}
	if c.consumeByte('@') {
		start := c.pos
		for {
			b, ok := c.peekByte()
			if !ok || b == ' ' || b == '\t' {
				break
			}
			c.pos++
		}
		lv, err := NewPlainLang(lex, c.input[start:c.pos])
		if err != nil {
			return nil, err
		}
		return Literal{Value: lv}, nil
	}
	return Literal{Value: Plain{Lex: lex}}, nil
}

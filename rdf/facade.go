package rdf

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// TurtleParser is the package's parser facade; findMapping/writeIRI are the
// Node→text helpers the core exposes for an external serializer to reuse.
// A full serializer, NTriples/XML parsers and network retrieval logic
// beyond a minimal http.Get are out of scope for this package.

// TurtleParser parses Turtle documents against a fixed (baseURL, docURL)
// pair, stateless otherwise: each ParseString/ParseFile/ParseURL call
// starts a fresh parse.
type TurtleParser struct {
	baseURL *BaseUrl
	docURL  *BaseUrl
}

// NewTurtleParser constructs a TurtleParser. Either argument may be empty
// to mean "none".
func NewTurtleParser(baseURL, docURL string) *TurtleParser {
	tp := &TurtleParser{}
	if baseURL != "" {
		b := BaseUrl{Text: baseURL}
		tp.baseURL = &b
	}
	if docURL != "" {
		d := BaseUrl{Text: docURL}
		tp.docURL = &d
	}
	return tp
}

// ParseString parses text, returning the resulting graph or a
// *ParseFailure wrapping the underlying *SyntaxError/*ResolutionError.
func (tp *TurtleParser) ParseString(text string) (Graph, error) {
	p := newParser(text, tp.baseURL, tp.docURL, 0)
	if err := p.parseDocument(); err != nil {
		return nil, newParseFailure("turtle", text, p.pos, err)
	}
	return NewGraph(p.triples, p.baseURL, NewPrefixMappings(p.prefixes)), nil
}

// ParseFile reads path and parses its contents. A read failure is an
// *IOError wrapped in a *ParseFailure.
func (tp *TurtleParser) ParseFile(path string) (Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseFailure{Format: "turtle", Err: &IOError{Message: "reading " + path, Err: err}}
	}
	return tp.ParseString(string(data))
}

// ParseURL fetches url over HTTP and parses the response body. Only the
// "http" scheme is supported; https retrieval is not implemented. If the
// facade was built without an explicit docURL, the fetched URL becomes the
// document's docURL for relative-IRI resolution.
func (tp *TurtleParser) ParseURL(rawURL string) (Graph, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, &ParseFailure{Format: "turtle", Err: &IOError{Message: "parsing URL " + rawURL, Err: err}}
	}
	if u.Scheme != "http" {
		return nil, &ParseFailure{Format: "turtle", Err: &IOError{
			Message: "unsupported URL scheme " + u.Scheme + " (only http is supported)",
			Err:     fmt.Errorf("scheme %q is not http", u.Scheme),
		}}
	}
	resp, err := http.Get(rawURL)
	if err != nil {
		return nil, &ParseFailure{Format: "turtle", Err: &IOError{Message: "fetching " + rawURL, Err: err}}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &ParseFailure{Format: "turtle", Err: &IOError{
			Message: "fetching " + rawURL,
			Err:     fmt.Errorf("unexpected HTTP status %s", resp.Status),
		}}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ParseFailure{Format: "turtle", Err: &IOError{Message: "reading response body from " + rawURL, Err: err}}
	}
	docURL := tp.docURL
	if docURL == nil {
		d := BaseUrl{Text: rawURL}
		docURL = &d
	}
	p := newParser(string(body), tp.baseURL, docURL, 0)
	if err := p.parseDocument(); err != nil {
		return nil, newParseFailure("turtle", string(body), p.pos, err)
	}
	return NewGraph(p.triples, p.baseURL, NewPrefixMappings(p.prefixes)), nil
}

// findMapping splits iri of the apparent form "prefix:local" on its first
// ':' and checks whether prefix is a key in prefixes. It returns ok=false
// for an iri with no ':' at all, or whose candidate prefix is unknown.
//
// This is a purely syntactic test, not a namespace-containment check: a
// QName-shaped absolute IRI with no matching prefix (e.g. "mailto:me@x")
// correctly reports ok=false and gets angle-bracketed by writeIRI, but a
// QName-shaped IRI whose text happens to collide with a bound prefix is
// genuinely ambiguous, and this check cannot tell the two cases apart.
func findMapping(prefixes PrefixMappings, iri string) (prefix, local string, ok bool) {
	idx := strings.IndexByte(iri, ':')
	if idx < 0 {
		return "", "", false
	}
	candidate := iri[:idx]
	if _, exists := prefixes.Lookup(candidate); !exists {
		return "", "", false
	}
	return candidate, iri[idx+1:], true
}

// writeIRI writes iri to sink as a "prefix:local" qname when findMapping
// succeeds, and as "<iri>" otherwise.
func writeIRI(sink io.Writer, iri string, prefixes PrefixMappings) error {
	if prefix, local, ok := findMapping(prefixes, iri); ok {
		_, err := fmt.Fprintf(sink, "%s:%s", prefix, local)
		return err
	}
	_, err := fmt.Fprintf(sink, "<%s>", iri)
	return err
}

// Package rdf parses Turtle documents into RDF graph values and compares
// graphs modulo blank-node renaming.
//
// The package covers two tightly coupled pieces: a stateful recursive-
// descent Turtle parser (grammar per the W3C Team Submission), and an
// immutable graph value model with a total node ordering and a blank-node-
// normalising isomorphism check. SPARQL, reasoning, RDF-star, and streaming
// parsing are out of scope; concrete serializer back-ends, NTriples/XML
// parsers, and network retrieval of documents are treated as external
// collaborators.
package rdf

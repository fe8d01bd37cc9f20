// Package rdf provides typed writer settings and the streaming RDF writers
// that honor them.
//
// Copyright 2026 Geoknoesis LLC (www.geoknoesis.com)
//
// Settings are declared once as typed, defaulted keys:
//   - Setting[T] is an immutable key with a display name and a default value.
//   - Catalog is a named set of settings with unique keys.
//   - Config holds per-operation overrides; Get and Set are typed, and Get
//     falls back to the setting's default when nothing is set.
//
// WriterSettings is the catalog of basic writer settings (pretty printing,
// blank node inlining, RDF 1.0 literal compatibility and the base directive).
//
// Example (configuring a writer):
//
//	cfg := rdf.NewConfig()
//	rdf.Set(cfg, rdf.WriterSettings.PrettyPrint, false)
//
//	w, err := rdf.NewWriter(out, rdf.FormatTurtle,
//	    rdf.OptConfig(cfg),
//	    rdf.OptBaseIRI("http://example.org/"),
//	)
//	if err != nil {
//	    // handle error
//	}
//	defer w.Close()
//
// Supported writer formats: Turtle, TriG, N-Triples, N-Quads and JSON-LD.
// N-Triples and N-Quads can also be read with NewReader and Parse.
//
// Settings can be loaded from any viper source (files, environment, flags)
// with LoadConfig; keys are matched against Setting.Key.
//
// A Config is not synchronized. Catalogs and settings are immutable and safe
// for concurrent use.
package rdf

package rdf

// WriterSettingPrefix namespaces the basic writer setting keys.
// The keys match the ones published by rdf4j so existing property files
// can be loaded unchanged.
const WriterSettingPrefix = "org.eclipse.rdf4j.rio."

// BasicWriterSettings groups the settings most writers support.
type BasicWriterSettings struct {
	// PrettyPrint selects readable output over compact output.
	// Defaults to true.
	PrettyPrint Setting[bool]

	// InlineBlankNodes writes blank nodes as property lists, collections and
	// anonymous nodes instead of labels. Writers must see every triple
	// before writing, so memory grows with the graph. Blank nodes in a
	// reference cycle keep their labels.
	// Defaults to false.
	InlineBlankNodes Setting[bool]

	// XSDStringToPlainLiteral drops the xsd:string datatype from literals,
	// writing them as RDF 1.0 plain literals.
	// Defaults to true.
	XSDStringToPlainLiteral Setting[bool]

	// RDFLangStringToLangLiteral drops the rdf:langString datatype from
	// language-tagged literals. Turtle, TriG, N-Triples, N-Quads and JSON-LD
	// cannot carry the datatype next to a language tag, so their writers
	// always behave as if this were true.
	// Defaults to true.
	RDFLangStringToLangLiteral Setting[bool]

	// BaseDirective emits a base IRI directive when a base IRI is known.
	// Defaults to true.
	BaseDirective Setting[bool]

	// Catalog holds the five settings above.
	Catalog *Catalog
}

// WriterSettings is the process-wide basic writer settings catalog.
var WriterSettings = newBasicWriterSettings()

func newBasicWriterSettings() BasicWriterSettings {
	ws := BasicWriterSettings{
		PrettyPrint: NewSetting(WriterSettingPrefix+"prettyprint",
			"Pretty print", true),
		InlineBlankNodes: NewSetting(WriterSettingPrefix+"inlineblanknodes",
			"Use blank node property lists, collections, and anonymous nodes instead of blank node labels", false),
		XSDStringToPlainLiteral: NewSetting(WriterSettingPrefix+"rdf10plainliterals",
			"RDF-1.0 compatible Plain Literals", true),
		RDFLangStringToLangLiteral: NewSetting(WriterSettingPrefix+"rdf10languageliterals",
			"RDF-1.0 compatible Language Literals", true),
		BaseDirective: NewSetting(WriterSettingPrefix+"basedirective",
			"Serialize base directive", true),
	}
	ws.Catalog = MustCatalog("basic writer settings",
		ws.PrettyPrint,
		ws.InlineBlankNodes,
		ws.XSDStringToPlainLiteral,
		ws.RDFLangStringToLangLiteral,
		ws.BaseDirective,
	)
	return ws
}

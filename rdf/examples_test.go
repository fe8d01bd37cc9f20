package rdf

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
)

func ExampleGet() {
	cfg := NewConfig()
	fmt.Println(Get(cfg, WriterSettings.PrettyPrint))

	Set(cfg, WriterSettings.PrettyPrint, false)
	fmt.Println(Get(cfg, WriterSettings.PrettyPrint))

	cfg.Clear(WriterSettings.PrettyPrint)
	fmt.Println(Get(cfg, WriterSettings.PrettyPrint))

	// Output:
	// true
	// false
	// true
}

func ExampleNewSetting() {
	maxDepth := NewSetting("org.example.rio.maxdepth", "Maximum nesting depth", 8)
	catalog := MustCatalog("example writer settings", maxDepth)

	cfg := NewConfig()
	if err := cfg.SetFromString(catalog, "org.example.rio.maxdepth", "3"); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(maxDepth, "=", Get(cfg, maxDepth))

	// Output:
	// org.example.rio.maxdepth (Maximum nesting depth) = 3
}

func ExampleNewCatalog() {
	a := NewSetting("org.example.rio.width", "Width", 80)
	b := NewSetting("org.example.rio.width", "Line width", 100)

	_, err := NewCatalog("example", a, b)
	fmt.Println(err)
	fmt.Println(Code(err))

	// Output:
	// catalog example: duplicate setting key "org.example.rio.width"
	// DUPLICATE_SETTING_KEY
}

func ExampleConfig_SetValue() {
	cfg := NewConfig()
	err := cfg.SetValue(WriterSettings.BaseDirective, "no")
	fmt.Println(err)
	fmt.Println(cfg.Contains(WriterSettings.BaseDirective))

	// Output:
	// setting org.eclipse.rdf4j.rio.basedirective: want bool, got string
	// false
}

func ExampleNewWriter() {
	cfg := NewConfig()
	Set(cfg, WriterSettings.PrettyPrint, true)

	w, err := NewWriter(os.Stdout, FormatTurtle,
		OptConfig(cfg),
		OptPrefixes(map[string]string{"ex": "http://example.org/"}),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	s := IRI{Value: "http://example.org/alice"}
	_ = w.Write(Quad{S: s, P: IRI{Value: RDFType}, O: IRI{Value: "http://example.org/Person"}})
	_ = w.Write(Quad{S: s, P: IRI{Value: "http://example.org/name"}, O: Literal{Lexical: "Alice"}})
	_ = w.Close()

	// Output:
	// @prefix ex: <http://example.org/> .
	//
	// ex:alice a ex:Person ;
	//     ex:name "Alice" .
}

func ExampleNewWriter_inlineBlankNodes() {
	cfg := NewConfig()
	Set(cfg, WriterSettings.InlineBlankNodes, true)
	Set(cfg, WriterSettings.PrettyPrint, false)

	w, err := NewWriter(os.Stdout, FormatTurtle,
		OptConfig(cfg),
		OptPrefixes(map[string]string{"ex": "http://example.org/"}),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = w.Write(Quad{S: IRI{Value: "http://example.org/alice"}, P: IRI{Value: "http://example.org/address"}, O: BlankNode{ID: "addr"}})
	_ = w.Write(Quad{S: BlankNode{ID: "addr"}, P: IRI{Value: "http://example.org/city"}, O: Literal{Lexical: "Paris"}})
	_ = w.Close()

	// Output:
	// @prefix ex: <http://example.org/> .
	// ex:alice ex:address [ ex:city "Paris" ] .
}

func ExampleParse() {
	input := "<http://example.org/s> <http://example.org/p> \"v\" <http://example.org/g> .\n"

	var buf bytes.Buffer
	w, _ := NewWriter(&buf, FormatTriG, OptPrefixes(map[string]string{"ex": "http://example.org/"}))
	err := Parse(context.Background(), strings.NewReader(input), FormatNQuads, func(q Quad) error {
		return w.Write(q)
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = w.Close()
	fmt.Print(buf.String())

	// Output:
	// @prefix ex: <http://example.org/> .
	//
	// ex:g {
	//     ex:s ex:p "v" .
	// }
}

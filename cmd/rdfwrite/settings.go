package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/geoknoesis/rdf-rio/rdf"
)

type settingRow struct {
	Key        string `json:"key" yaml:"key"`
	Name       string `json:"name" yaml:"name"`
	Default    any    `json:"default" yaml:"default"`
	Value      any    `json:"value" yaml:"value"`
	Overridden bool   `json:"overridden" yaml:"overridden"`
}

func newSettingsCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "List the writer settings and their effective values",
		Long: `List every basic writer setting with its default and the value in effect
after applying --config, environment variables and --set.

Examples:
  rdfwrite settings
  rdfwrite settings --output yaml --set org.eclipse.rdf4j.rio.prettyprint=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeSettings(cmd.OutOrStdout(), output, settingRows(a.config))
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format: table, yaml or json")
	return cmd
}

func settingRows(cfg *rdf.Config) []settingRow {
	settings := rdf.WriterSettings.Catalog.Settings()
	rows := make([]settingRow, 0, len(settings))
	for _, s := range settings {
		rows = append(rows, settingRow{
			Key:        s.Key(),
			Name:       s.DisplayName(),
			Default:    s.Default(),
			Value:      cfg.Value(s),
			Overridden: cfg.Contains(s),
		})
	}
	return rows
}

func writeSettings(w io.Writer, output string, rows []settingRow) error {
	switch output {
	case "table", "":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "KEY\tDEFAULT\tVALUE\tNAME")
		for _, row := range rows {
			value := fmt.Sprint(row.Value)
			if row.Overridden {
				value += " *"
			}
			fmt.Fprintf(tw, "%s\t%v\t%s\t%s\n", row.Key, row.Default, value, row.Name)
		}
		return tw.Flush()
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	default:
		return fmt.Errorf("unknown output format %q (want table, yaml or json)", output)
	}
}

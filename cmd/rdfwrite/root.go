package main

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/geoknoesis/rdf-rio/rdf"
)

// envPrefix prefixes environment overrides, e.g.
// RDFWRITE_ORG_ECLIPSE_RDF4J_RIO_PRETTYPRINT=false.
const envPrefix = "RDFWRITE"

// app holds the state shared by all subcommands once flags are parsed.
type app struct {
	configFile string
	verbose    bool
	overrides  []string

	logger zerolog.Logger
	config *rdf.Config
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "rdfwrite",
		Short: "Write RDF with configurable writer settings",
		Long: `rdfwrite re-serializes RDF documents using the basic writer settings.

Settings are resolved in this order, later sources winning:
  1. built-in defaults
  2. the config file given with --config (TOML, YAML or JSON)
  3. RDFWRITE_* environment variables (dots in keys become underscores)
  4. --set key=value flags`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "settings file")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log debug output to stderr")
	flags.StringArrayVar(&a.overrides, "set", nil, "override a setting (key=value, repeatable)")

	root.AddCommand(newSettingsCmd(a), newConvertCmd(a))
	return root
}

func (a *app) load(cmd *cobra.Command) error {
	level := zerolog.InfoLevel
	if a.verbose {
		level = zerolog.DebugLevel
	}
	a.logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Str("command", cmd.Name()).
		Logger()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if a.configFile != "" {
		v.SetConfigFile(a.configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", a.configFile, err)
		}
		a.logger.Debug().Str("file", v.ConfigFileUsed()).Msg("loaded settings file")
	}

	cfg, err := rdf.LoadConfig(v, rdf.WriterSettings.Catalog)
	if err != nil {
		return err
	}

	assignments, err := parseAssignments(a.overrides, "--set")
	if err != nil {
		return err
	}
	for _, kv := range assignments {
		if err := cfg.SetFromString(rdf.WriterSettings.Catalog, kv.key, kv.value); err != nil {
			return fmt.Errorf("--set %s: %w", kv.key, err)
		}
	}

	for _, key := range cfg.Keys() {
		a.logger.Debug().Str("setting", key).Interface("value", cfg.Value(mustLookup(key))).Msg("override")
	}
	a.config = cfg
	return nil
}

func mustLookup(key string) rdf.SettingKey {
	s, ok := rdf.WriterSettings.Catalog.Lookup(key)
	if !ok {
		panic("rdfwrite: setting " + key + " missing from catalog")
	}
	return s
}

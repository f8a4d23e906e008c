package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"itemservice/internal/adapters/catalog"
	"itemservice/internal/config"
	"itemservice/internal/platform/logger"
	"itemservice/internal/platform/validation"
)

// app carries what every subcommand shares. It is filled in by the root
// command before any subcommand runs.
type app struct {
	catalogPath string
	prefix      string
	verbose     bool

	cfg *config.ValidationConfig
	log logger.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "msgcodes",
		Short:         "Inspect validation message codes",
		Long:          "msgcodes lists the message keys a violation is looked up under, resolves messages against the catalog and validates items from the command line.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.catalogPath, "catalog", "", "Catalog file merged over the embedded messages (defaults to CATALOG_PATH)")
	flags.StringVar(&a.prefix, "prefix", "", "Prefix prepended to every message key (defaults to CATALOG_PREFIX)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Log at debug level")

	root.AddCommand(
		newKeysCmd(a),
		newResolveCmd(a),
		newCheckCmd(a),
		newVersionCmd(),
	)
	return root
}

// load reads the validation config and lets explicit flags override it.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.LoadValidation()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("catalog") {
		cfg.CatalogPath = a.catalogPath
	}
	if flags.Changed("prefix") {
		cfg.CatalogPrefix = a.prefix
	}
	a.cfg = cfg

	level := logger.LevelWarn
	if a.verbose {
		level = logger.LevelDebug
	}
	log, err := logger.NewZapLogger(logger.Config{
		Environment: cfg.Environment,
		Level:       level,
		Format:      logger.FormatText,
	})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	a.log = log
	return nil
}

func (a *app) codes() validation.DefaultCodesResolver {
	return validation.DefaultCodesResolver{Prefix: a.cfg.CatalogPrefix}
}

func (a *app) messages() (*validation.MessageResolver, error) {
	messages, err := catalog.New(a.cfg, a.log)
	if err != nil {
		return nil, err
	}
	return validation.NewMessageResolver(messages, a.codes()), nil
}

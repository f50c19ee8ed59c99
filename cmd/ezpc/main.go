// Command ezpc validates a batch of JSON or TOML files against the grammars
// in github.com/kamstrand/ezpc/examples, reporting every file's failure in
// one run instead of stopping at the first.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/kamstrand/ezpc/examples/json"
	"github.com/kamstrand/ezpc/examples/toml"
)

var log = logrus.StandardLogger()

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var grammar string

	cmd := &cobra.Command{
		Use:   "ezpc <file> [file...]",
		Short: "Validate files against ezpc's example grammars",
		Long: `ezpc parses one or more files as JSON or TOML via --grammar, reporting
every file's failure in one run instead of stopping at the first.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(grammar, args)
		},
	}

	cmd.Flags().StringVar(&grammar, "grammar", "json", "input grammar: json or toml")

	return cmd
}

func run(grammar string, files []string) error {
	var parse func(string) error

	switch grammar {
	case "json":
		parse = func(src string) error {
			_, err := json.Parse(src)
			return err
		}
	case "toml":
		parse = func(src string) error {
			_, err := toml.Parse(src)
			return err
		}
	default:
		return fmt.Errorf("unknown grammar %q", grammar)
	}

	var errs error
	for _, path := range files {
		fields := logrus.Fields{"file": path, "grammar": grammar}

		data, err := os.ReadFile(path)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", path, err))
			log.WithFields(fields).WithError(err).Error("could not read file")
			continue
		}

		if err := parse(string(data)); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", path, err))
			log.WithFields(fields).WithError(err).Error("parse failed")
			continue
		}

		log.WithFields(fields).Info("ok")
	}

	return errs
}

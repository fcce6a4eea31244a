package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dacharyc/htmldiff"
	"github.com/dacharyc/htmldiff/internal/config"
)

// localConfigFile is looked up in the working directory before the user
// config directory.
const localConfigFile = ".htmldiff.yaml"

// app carries the state shared by all subcommands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "htmldiff",
		Short: "Inline visual diffs of HTML documents",
		Long: `htmldiff compares two versions of an HTML document and renders the
newer version with inserted text wrapped in <ins> and deleted text wrapped in
<del>. Markup tags are never wrapped.`,
		Version:       version,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "",
		"config file (default: ./.htmldiff.yaml or ~/.config/htmldiff/config.yaml)")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.String("ins-tag", "", "tag name marking inserted content")
	flags.String("del-tag", "", "tag name marking deleted content")
	flags.Bool("no-trim-quotes", false, "do not strip surrounding quotes from inputs")

	_ = a.v.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("insert_tag", flags.Lookup("ins-tag"))
	_ = a.v.BindPFlag("delete_tag", flags.Lookup("del-tag"))

	rootCmd.AddCommand(
		newDiffCmd(a),
		newRestoreCmd(a),
		newUnifiedCmd(a),
		newPluginCmd(a),
		newCompareCmd(a),
		newInitConfigCmd(),
	)

	return rootCmd
}

// load reads configuration and sets up logging.
func (a *app) load(cmd *cobra.Command) error {
	defaults := config.Defaults()
	a.v.SetDefault("insert_tag", defaults.InsertTag)
	a.v.SetDefault("delete_tag", defaults.DeleteTag)
	a.v.SetDefault("trim_quotes", defaults.TrimQuotes)
	a.v.SetDefault("log_level", defaults.LogLevel)

	a.v.SetEnvPrefix("HTMLDIFF")
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else if _, err := os.Stat(localConfigFile); err == nil {
		a.v.SetConfigFile(localConfigFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(filepath.Join(home, ".config", "htmldiff"))
		}
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
	}

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	if err := a.v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}

	if noTrim, _ := cmd.Flags().GetBool("no-trim-quotes"); noTrim {
		a.cfg.TrimQuotes = false
	}

	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level, _ := a.cfg.Level()
	a.logger = newLogger(cmd.ErrOrStderr(), level)
	a.logger.Debug("config loaded",
		"file", a.v.ConfigFileUsed(),
		"insert_tag", a.cfg.InsertTag,
		"delete_tag", a.cfg.DeleteTag,
		"trim_quotes", a.cfg.TrimQuotes)

	return nil
}

// options returns the diff options for the loaded configuration.
func (a *app) options() []htmldiff.Option {
	return a.cfg.Options()
}

// newLogger returns a text logger writing records at or above level to w.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// readInput returns the contents of the named file, or of stdin for "-".
func readInput(cmd *cobra.Command, name string) (string, error) {
	if name == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(name) //nolint:gosec // G304: path comes from the command line
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", name, err)
	}
	return string(data), nil
}

// readPair reads the two inputs of a comparison. At most one may be stdin.
func readPair(cmd *cobra.Command, beforeName, afterName string) (string, string, error) {
	if beforeName == "-" && afterName == "-" {
		return "", "", errors.New("only one input can be read from stdin")
	}
	before, err := readInput(cmd, beforeName)
	if err != nil {
		return "", "", err
	}
	after, err := readInput(cmd, afterName)
	if err != nil {
		return "", "", err
	}
	return before, after, nil
}

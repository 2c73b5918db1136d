// Package cli implements the clients command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/clients/internal/paths"
	"github.com/mesh-intelligence/clients/pkg/clients"
	"github.com/mesh-intelligence/clients/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// codedError carries the process exit code for an error returned by a command.
type codedError struct {
	code int
	err  error
}

func (e *codedError) Error() string { return e.err.Error() }
func (e *codedError) Unwrap() error { return e.err }

func sysError(err error) error  { return &codedError{code: exitSysError, err: err} }
func userError(err error) error { return &codedError{code: exitUserError, err: err} }

// exitCode maps a command error to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ce *codedError
	if errors.As(err, &ce) {
		return ce.code
	}
	return exitUserError
}

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	logLevel  string
	jsonMode  bool
}

// app is the state shared by the commands of one root command.
type app struct {
	flags  rootFlags
	config *viper.Viper
	logger *slog.Logger
}

// NewRootCmd creates the top-level "clients" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:     "clients",
		Short:   "In-memory client repository demo",
		Long:    "clients creates and looks up client records in an unbounded or a\nfixed-capacity in-memory repository.",
		Version: clients.Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn, error (default: config log_level)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newDemoCmd(a))
	root.AddCommand(newFillCmd(a))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "clients:", err)
		os.Exit(exitCode(err))
	}
}

// setup loads config.yaml and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command) error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}

	v, err := loadConfig(configDir)
	if err != nil {
		return sysError(err)
	}
	a.config = v

	level := a.flags.logLevel
	if level == "" {
		level = v.GetString(cfgKeyLogLevel)
	}
	logger, err := newLogger(cmd.ErrOrStderr(), level)
	if err != nil {
		return userError(err)
	}
	a.logger = logger
	a.logger.Debug("config loaded", "dir", configDir, "file", v.ConfigFileUsed())
	return nil
}

// repoConfig returns the repository config read from config.yaml and the
// CLIENTS_* environment. A capacity that is not an integer is a user error.
func (a *app) repoConfig() (types.Config, error) {
	capacity, err := cast.ToIntE(a.config.Get(cfgKeyCapacity))
	if err != nil {
		return types.Config{}, userError(fmt.Errorf("invalid %s %q: %w", cfgKeyCapacity, a.config.GetString(cfgKeyCapacity), err))
	}
	return types.Config{
		Backend:  a.config.GetString(cfgKeyBackend),
		Capacity: capacity,
		Eviction: a.config.GetString(cfgKeyEviction),
	}, nil
}

// newLogger returns a text logger on w at the named level.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

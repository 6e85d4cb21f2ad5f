package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tamirms/primesieve/internal/config"
)

// ConfigLoader loads config from a path.
type ConfigLoader func(path string) (*config.Config, error)

// AppOption customizes App dependencies.
type AppOption func(*App)

// App holds CLI state and runtime dependencies.
type App struct {
	root *cobra.Command

	loadConfig ConfigLoader
	stdout     io.Writer
	stderr     io.Writer
	cfgFile    string
	verbose    bool
	cfg        *config.Config
	logger     *zap.Logger

	sieve sieveFlags
}

// WithConfigLoader injects a config loader dependency.
func WithConfigLoader(loader ConfigLoader) AppOption {
	return func(a *App) {
		if loader != nil {
			a.loadConfig = loader
		}
	}
}

// WithIO injects process output streams.
func WithIO(stdout, stderr io.Writer) AppOption {
	return func(a *App) {
		if stdout != nil {
			a.stdout = stdout
		}
		if stderr != nil {
			a.stderr = stderr
		}
	}
}

// NewApp creates a new CLI app with default dependencies.
func NewApp(opts ...AppOption) *App {
	a := &App{
		loadConfig: config.LoadConfig,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(a)
	}

	a.root = a.newRootCommand()
	return a
}

func (a *App) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:     "toprofile",
		Short:   "Runs some tasks that can be profiled",
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
		SilenceUsage: true,
	}
	root.SetVersionTemplate("{{.Version}}\n")
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default ~/.toprofile/config.yaml)")
	root.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "enable debug logging")

	root.AddCommand(a.newSieveCommand())
	root.AddCommand(a.newVersionCommand())

	return root
}

// Execute runs the root command with os.Args.
func (a *App) Execute() error {
	defer func() { _ = a.logger.Sync() }()
	return a.root.Execute()
}

// run executes the root command with explicit arguments.
func (a *App) run(args ...string) error {
	a.root.SetArgs(args)
	return a.Execute()
}

func (a *App) initConfig() error {
	path := a.cfgFile
	if path == "" {
		path = config.DefaultConfigPath()
	}

	cfg, err := a.loadConfig(path)
	if err != nil {
		return exitWithCode(ExitFailure, fmt.Errorf("load config %s: %w", path, err))
	}
	if cfg == nil {
		cfg = &config.Config{}
	}
	a.cfg = cfg

	logger, err := a.newLogger()
	if err != nil {
		return exitWithCode(ExitFailure, err)
	}
	a.logger = logger
	return nil
}

// newLogger builds a JSON logger on stderr. --verbose forces debug level;
// otherwise the config level applies, defaulting to warn so that normal
// runs only print results.
func (a *App) newLogger() (*zap.Logger, error) {
	level := zapcore.WarnLevel
	if a.cfg.Log.Level != "" {
		parsed, err := zapcore.ParseLevel(a.cfg.Log.Level)
		if err != nil {
			return nil, fmt.Errorf("config log.level: %w", err)
		}
		level = parsed
	}
	if a.verbose {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(a.stderr),
		level,
	)
	return zap.New(core), nil
}

package commands

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/petal-labs/easel/assets"
	"github.com/petal-labs/easel/cli/config"
	"github.com/petal-labs/easel/cli/keystore"
	"github.com/petal-labs/easel/core"
	"github.com/petal-labs/easel/internal/log"
)

// ConfigLoader loads CLI config from a path.
type ConfigLoader func(path string) (*config.Config, error)

// ProviderFactory creates a provider using CLI config context.
type ProviderFactory func(providerID, apiKey string, cfg *config.Config) (core.ImageProvider, error)

// KeystoreFactory creates a keystore instance.
type KeystoreFactory func() (keystore.Keystore, error)

// EnvLoader populates the process environment, typically from a .env file.
type EnvLoader func() error

// AppOption customizes App dependencies.
type AppOption func(*App)

// App holds CLI state and runtime dependencies.
type App struct {
	root *cobra.Command

	loadConfig     ConfigLoader
	createProvider ProviderFactory
	newKeystore    KeystoreFactory
	loadEnv        EnvLoader
	fetcher        core.Fetcher
	stdin          io.Reader
	stdout         io.Writer
	stderr         io.Writer
	cfgFile        string
	provider       string
	model          string
	jsonOutput     bool
	verbose        bool
	cfg            *config.Config
	logger         *slog.Logger

	genPrompt  string
	genSize    string
	genQuality string
	genStyle   string
	genOutput  string
	genCount   int

	inspireSeed int64
	initForce   bool
}

// WithConfigLoader injects a config loader dependency.
func WithConfigLoader(loader ConfigLoader) AppOption {
	return func(a *App) {
		if loader != nil {
			a.loadConfig = loader
		}
	}
}

// WithProviderFactory injects a provider factory dependency.
func WithProviderFactory(factory ProviderFactory) AppOption {
	return func(a *App) {
		if factory != nil {
			a.createProvider = factory
		}
	}
}

// WithKeystoreFactory injects a keystore factory dependency.
func WithKeystoreFactory(factory KeystoreFactory) AppOption {
	return func(a *App) {
		if factory != nil {
			a.newKeystore = factory
		}
	}
}

// WithEnvLoader replaces the .env loader.
func WithEnvLoader(loader EnvLoader) AppOption {
	return func(a *App) {
		if loader != nil {
			a.loadEnv = loader
		}
	}
}

// WithFetcher injects the image downloader.
func WithFetcher(f core.Fetcher) AppOption {
	return func(a *App) {
		if f != nil {
			a.fetcher = f
		}
	}
}

// WithIO injects process I/O streams.
func WithIO(stdin io.Reader, stdout, stderr io.Writer) AppOption {
	return func(a *App) {
		if stdin != nil {
			a.stdin = stdin
		}
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
		loadConfig:     config.LoadConfig,
		createProvider: defaultProviderFactory(),
		newKeystore:    keystore.NewKeystore,
		loadEnv:        loadDotEnv,
		fetcher:        assets.NewHTTPFetcher(),
		stdin:          os.Stdin,
		stdout:         os.Stdout,
		stderr:         os.Stderr,
	}

	for _, opt := range opts {
		opt(a)
	}

	a.root = a.newRootCommand()
	return a
}

func (a *App) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "easel",
		Short: "Easel - turn text prompts into images",
		Long: `Easel sends a text prompt to a hosted image model, downloads the
generated picture and saves it as ai_masterpiece.png.

Use Easel to generate images, browse styles, and manage API keys.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags available to all commands.
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ~/.easel/config.yaml)")
	root.PersistentFlags().StringVar(&a.provider, "provider", "", "provider ID (default openai)")
	root.PersistentFlags().StringVar(&a.model, "model", "", "image model ID (e.g. dall-e-3)")
	root.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "emit JSON output")
	root.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "enable debug logging")

	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	root.AddCommand(a.newGenerateCommand())
	root.AddCommand(a.newInspireCommand())
	root.AddCommand(a.newStylesCommand())
	root.AddCommand(a.newKeysCommand())
	root.AddCommand(a.newInitCommand())
	root.AddCommand(a.newVersionCommand())

	return root
}

// Execute runs the root command with os.Args.
func (a *App) Execute(ctx context.Context) error {
	return a.Run(ctx, os.Args[1:])
}

// Run runs the root command with args and reports any error on stderr.
// The returned error carries an exit code when one applies.
func (a *App) Run(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	err := a.root.ExecuteContext(ctx)
	if err != nil {
		a.reportError(err)
	}
	return err
}

func (a *App) initConfig() error {
	// Without --verbose stderr is reserved for the error report.
	a.logger = log.New(lo.Ternary[io.Writer](a.verbose, a.stderr, io.Discard), a.verbose)

	if err := a.loadEnv(); err != nil {
		a.logger.Warn("failed to load .env", slog.Any("err", err))
	}

	path := a.cfgFile
	if path == "" {
		path = config.DefaultConfigPath()
	}

	cfg, err := a.loadConfig(path)
	if err != nil {
		return exitWithCode(ExitValidation, err)
	}
	a.cfg = cfg

	// Apply config defaults if flags not set.
	if a.provider == "" {
		a.provider = cfg.Provider
	}
	if a.model == "" {
		a.model = cfg.Model
	}

	a.logger.Debug("config loaded",
		slog.String("path", path),
		slog.String("provider", a.provider),
		slog.String("model", a.model),
	)
	return nil
}

// loadDotEnv reads .env from the working directory when present.
func loadDotEnv() error {
	if _, err := os.Stat(".env"); err != nil {
		return nil
	}
	return godotenv.Load()
}

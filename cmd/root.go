// ABOUTME: Root command for balungpisah-admin CLI
// ABOUTME: Handles global flags, configuration and client construction

package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/balungpisah/balungpisah-admin/internal/client"
	"github.com/balungpisah/balungpisah-admin/internal/config"
	"github.com/balungpisah/balungpisah-admin/internal/logger"
	"github.com/balungpisah/balungpisah-admin/internal/session"
	"github.com/spf13/cobra"
)

var (
	apiURL      string
	jsonOutput  bool
	sessionFile string

	appConfig *config.Config
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "balungpisah-admin",
	Short: "Admin console for the Balungpisah citizen-reporting platform",
	Long: `balungpisah-admin browses and manages Balungpisah reports, tickets,
contributors, expectations, prompts and rate-limit settings from the terminal.

Run "balungpisah-admin login" first; the session token is kept in
$XDG_CONFIG_HOME/balungpisah/session.json.

Environment Variables:
  BALUNGPISAH_API_URL       Backend API URL (default: http://localhost:8000)
  NEXT_PUBLIC_API_URL       Fallback backend API URL
  BALUNGPISAH_SESSION_FILE  Session file location
  BALUNGPISAH_TIMEOUT       Request timeout in seconds (default: 30)
  BALUNGPISAH_ALL_PROXY     ssh+socks5://user@host:port?private-key=/path
  LOG_LEVEL, LOG_FORMAT     Diagnostics on stderr (info/text)`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(); err != nil {
			return err
		}
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		appConfig = cfg
		logger.Init(os.Stderr, cfg.LogLevel, cfg.LogFormat)
		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend API URL (overrides BALUNGPISAH_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
	rootCmd.PersistentFlags().StringVar(&sessionFile, "session-file", "", "Session file (overrides BALUNGPISAH_SESSION_FILE)")
}

// currentConfig returns the loaded configuration, loading it on first use
// when a command runs without the root pre-run (as in tests)
func currentConfig() *config.Config {
	if appConfig != nil {
		return appConfig
	}
	cfg, err := config.Load()
	if err != nil {
		slog.Warn("invalid configuration, using defaults", "error", err)
		return &config.Config{APIURL: config.DefaultAPIURL, Timeout: client.DefaultTimeout}
	}
	return cfg
}

// GetAPIURL returns the API URL from flag, env, or default (in priority order)
func GetAPIURL() string {
	return currentConfig().ResolveAPIURL(apiURL)
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// sessionStore opens the file-backed session store
func sessionStore() *session.FileStore {
	path := sessionFile
	if path == "" {
		path = currentConfig().SessionFile
	}
	if path == "" {
		path = session.DefaultPath()
	}
	return session.NewFileStore(path)
}

// loginHint is the CLI's unauthenticated entry point
func loginHint(w io.Writer) session.Navigator {
	return session.NavigatorFunc(func() {
		fmt.Fprintln(w, "Session expired or missing. Run \"balungpisah-admin login\" to sign in.")
	})
}

// newClient builds the API client every command shares. extra options are
// applied last so callers can replace the defaults.
func newClient(extra ...client.Option) (*client.Client, error) {
	cfg := currentConfig()
	store := sessionStore()

	opts := []client.Option{
		client.WithStore(store),
		client.WithNavigator(loginHint(os.Stderr)),
		client.WithLogger(slog.Default()),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, client.WithTimeout(cfg.Timeout))
	}
	if cfg.AllProxy != "" {
		transport, err := client.NewProxyTransport(cfg.AllProxy)
		if err != nil {
			return nil, fmt.Errorf("invalid BALUNGPISAH_ALL_PROXY: %w", err)
		}
		opts = append(opts, client.WithTransport(transport))
	}
	return client.New(GetAPIURL(), append(opts, extra...)...), nil
}

// signalContext is canceled on SIGINT or SIGTERM
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

// runnable is the shape shared by every command body
type runnable func(ctx context.Context, c *client.Client, w io.Writer, args []string) int

// clientRun adapts a runnable to cobra, exiting with its code. opts are
// passed to newClient.
func clientRun(run runnable, opts ...client.Option) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		ctx, cancel := signalContext()
		defer cancel()

		c, err := newClient(opts...)
		if err != nil {
			fmt.Fprintf(os.Stdout, "Error: %v\n", err)
			os.Exit(2)
		}

		exitCode := run(ctx, c, os.Stdout, args)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	}
}

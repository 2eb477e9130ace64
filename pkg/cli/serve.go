package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/arkivsim/arkivsim/pkg/config"
	"github.com/arkivsim/arkivsim/pkg/engine"
	"github.com/arkivsim/arkivsim/pkg/logging"
)

// serveFlags holds the flag overrides for the serve command. Zero values
// mean "not set" so the config file and environment keep their say.
type serveFlags struct {
	simulatorPort int
	adminPort     int
	logLevel      string
	logFormat     string
}

var serveFlagVals serveFlags

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the simulator (foreground)",
	Long: `Start the archive simulator in the foreground.

Configuration is resolved in order: built-in defaults, then the config
file (--config), then ARKIVSIM_* environment variables, then flags.`,
	Example: `  # Start with defaults
  arkivsim serve

  # Start with a config file on custom ports
  arkivsim serve --config arkivsim.yaml --port 3000 --admin-port 3001

  # JSON logs at debug level
  arkivsim serve --log-level debug --log-format json`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&serveFlagVals.simulatorPort, "port", 0, "Simulator port (default 9090)")
	serveCmd.Flags().IntVar(&serveFlagVals.adminPort, "admin-port", 0, "Admin API port (default 8080)")
	serveCmd.Flags().StringVar(&serveFlagVals.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	serveCmd.Flags().StringVar(&serveFlagVals.logFormat, "log-format", "", "Log format: text or json")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(serveFlagVals)
	if err != nil {
		return err
	}

	log := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Format: logging.ParseFormat(cfg.LogFormat),
	})

	srv := engine.NewServer(cfg, engine.WithLogger(log))
	if err := srv.Start(); err != nil {
		return fmt.Errorf("starting simulator: %w", err)
	}

	fmt.Printf("Simulator listening on :%d, admin API on :%d\n",
		cfg.SimulatorPort, cfg.AdminPort)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	fmt.Println("\nShutting down...")

	return srv.Stop()
}

// resolveConfig layers file, environment and flag overrides on the defaults.
func resolveConfig(f serveFlags) (config.Config, error) {
	cfg := config.Default()

	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			if errors.Is(err, config.ErrFileNotFound) {
				return cfg, err
			}
			return cfg, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	cfg, err := config.FromEnv(cfg)
	if err != nil {
		return cfg, fmt.Errorf("reading environment: %w", err)
	}

	if f.simulatorPort != 0 {
		cfg.SimulatorPort = f.simulatorPort
	}
	if f.adminPort != 0 {
		cfg.AdminPort = f.adminPort
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	if f.logFormat != "" {
		cfg.LogFormat = f.logFormat
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

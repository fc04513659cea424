package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mwarzynski/uw-turing-machine/internal/cache"
	"github.com/mwarzynski/uw-turing-machine/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the translator HTTP server",
	Long: `Starts an HTTP API exposing POST /translate and POST /run, with a
content-hash cache of translated tables (in-memory, or Redis when
configured) and Prometheus metrics on /metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServe(cmd); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "", "Port to listen on (overrides config)")
	serveCmd.Flags().String("redis", "", "Redis address for the table cache (overrides config)")
	serveCmd.Flags().String("config", "", "Path to a YAML config file")
}

// serveConfig is the YAML config surface of the server.
type serveConfig struct {
	Port            string `mapstructure:"port"`
	RedisAddr       string `mapstructure:"redis_addr"`
	RedisTTLSeconds int    `mapstructure:"redis_ttl_seconds"`
}

// loadServeConfig reads the optional YAML config file and applies flag
// overrides on top.
func loadServeConfig(cmd *cobra.Command) (serveConfig, error) {
	cfg := serveConfig{Port: "8080"}

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		var raw map[string]any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return cfg, fmt.Errorf("decode config: %w", err)
		}
		if err := mapstructure.Decode(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("decode config: %w", err)
		}
		if cfg.Port == "" {
			cfg.Port = "8080"
		}
	}

	if port, _ := cmd.Flags().GetString("port"); port != "" {
		cfg.Port = port
	}
	if addr, _ := cmd.Flags().GetString("redis"); addr != "" {
		cfg.RedisAddr = addr
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command) error {
	logger := newLogger(cmd)

	cfg, err := loadServeConfig(cmd)
	if err != nil {
		return err
	}

	var store cache.Store = cache.NewMemory()
	if cfg.RedisAddr != "" {
		ttl := time.Duration(cfg.RedisTTLSeconds) * time.Second
		store = cache.NewRedis(cfg.RedisAddr, cache.WithTTL(ttl))
		logger.Info("using redis table cache", "addr", cfg.RedisAddr)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: server.NewHandler(store, logger),
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		logger.Info("starting translator server", "addr", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt or terminate signals.
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutting down", "signal", sig.String())

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Warn("graceful shutdown did not complete", "error", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("could not stop server: %w", err)
			}
		}
	}
	return nil
}

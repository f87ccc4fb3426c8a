package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stoik/scribe/internal/draft"
	"github.com/stoik/scribe/internal/provider"
	"github.com/stoik/scribe/internal/server"
)

var rootCmd = &cobra.Command{
	Use:   "scribe",
	Short: "Scribe Email Draft Service",
	Long:  "Generates email drafts from structured parameters using a generative-text provider",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the draft HTTP server",
	Long:  "Serves the email draft endpoints and forwards prompts to the configured provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		gen := provider.NewAnthropicClient()
		drafts := draft.NewService(gen)
		router := server.NewRouter(drafts)

		addr := viper.GetString("server.addr")
		srv := &http.Server{
			Addr:    addr,
			Handler: router,
		}

		errChan := make(chan error, 1)
		go func() {
			log.Printf("Starting scribe server on %s", addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errChan <- err
			}
		}()

		// Handle graceful shutdown
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

		select {
		case <-sigChan:
			fmt.Println("\nShutting down gracefully...")

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				return fmt.Errorf("server shutdown: %w", err)
			}
			return nil
		case err := <-errChan:
			return err
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Flags
	rootCmd.PersistentFlags().String("server.addr", ":8080", "HTTP listen address")
	rootCmd.PersistentFlags().String("provider.api_url", "https://api.anthropic.com", "Provider API base URL")
	rootCmd.PersistentFlags().String("provider.model", "claude-sonnet-4-5-20250929", "Provider model identifier")
	rootCmd.PersistentFlags().Int("provider.max_tokens", 1024, "Maximum tokens per generation")

	// Bind flags to viper
	viper.BindPFlag("server.addr", rootCmd.PersistentFlags().Lookup("server.addr"))
	viper.BindPFlag("provider.api_url", rootCmd.PersistentFlags().Lookup("provider.api_url"))
	viper.BindPFlag("provider.model", rootCmd.PersistentFlags().Lookup("provider.model"))
	viper.BindPFlag("provider.max_tokens", rootCmd.PersistentFlags().Lookup("provider.max_tokens"))

	rootCmd.AddCommand(serveCmd)
}

func initConfig() {
	// Local development convenience; the key normally comes from the
	// process environment.
	if err := godotenv.Load(); err == nil {
		fmt.Fprintln(os.Stderr, "Loaded environment from .env")
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()
	viper.BindEnv("provider.api_key", "ANTHROPIC_API_KEY")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

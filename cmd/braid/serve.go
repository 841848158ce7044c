package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpAdapter "github.com/aretw0/braid/internal/adapters/http"
	"github.com/aretw0/braid/internal/adapters/memory"
	redisAdapter "github.com/aretw0/braid/internal/adapters/redis"
	"github.com/aretw0/braid/internal/config"
	"github.com/aretw0/braid/internal/presentation/tui"
	"github.com/aretw0/braid/pkg/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Starts the stateless JSON API exposing parse, validate, and plan over HTTP, with Prometheus metrics on /metrics. Plans are cached in memory, or in Redis when configured.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		addr, _ := cmd.Flags().GetString("addr")

		cfg, err := config.Load(configPath, cmd.Flags().Changed("config"))
		if err != nil {
			fmt.Printf("Config error: %v\n", err)
			os.Exit(1)
		}
		if cmd.Flags().Changed("addr") {
			cfg.Addr = addr
		}

		ttl, err := cfg.TTL()
		if err != nil {
			fmt.Printf("Config error: %v\n", err)
			os.Exit(1)
		}

		var store ports.PlanStore = memory.New()
		if cfg.Redis.Addr != "" {
			store = redisAdapter.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
				redisAdapter.WithTTL(ttl))
		}

		server := httpAdapter.NewServer(newParser(cmd), httpAdapter.WithPlanStore(store))
		srv := &http.Server{
			Addr:    cfg.Addr,
			Handler: server.Handler(),
		}

		serverErrors := make(chan error, 1)
		go func() {
			tui.PrintBanner()
			fmt.Printf("Starting Braid server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStarting shutdown... Signal: %v\n", sig)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Braid server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
	serveCmd.Flags().String("config", "braid.yaml", "Path to the server config file")
}

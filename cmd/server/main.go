package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pep299/text-summarizer/internal/config"
	"github.com/pep299/text-summarizer/internal/handlers"
	"github.com/robfig/cron/v3"
)

var (
	Version   string = "dev"
	Commit    string = "unknown"
	BuildTime string = "unknown"
)

func main() {
	var (
		showHelp    = flag.Bool("help", false, "Show help message")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showHelp {
		fmt.Printf("Text Summarizer Server\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nEnvironment Variables:\n")
		fmt.Printf("  PORT                  Server port (default: 8080)\n")
		fmt.Printf("  HOST                  Server host (default: 0.0.0.0)\n")
		fmt.Printf("  SUMMARY_WORD_LIMIT    Max words kept in a summary (default: 10)\n")
		fmt.Printf("  HEARTBEAT_SCHEDULE    Cron schedule for stats heartbeat (default: @every 1m, empty disables)\n")
		os.Exit(0)
	}

	if *showVersion {
		fmt.Printf("Text Summarizer Server\n")
		fmt.Printf("Version: %s\n", Version)
		fmt.Printf("Commit: %s\n", Commit)
		fmt.Printf("Build Time: %s\n", BuildTime)
		os.Exit(0)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create server
	server := handlers.NewServer(cfg)

	// Setup routes
	router := server.SetupRoutes()

	// Create HTTP server
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Create cron scheduler for the stats heartbeat
	c := cron.New()

	if cfg.HeartbeatSchedule != "" {
		_, err := c.AddFunc(cfg.HeartbeatSchedule, func() {
			snap := server.Stats().Snapshot()
			log.Printf("heartbeat uptime=%ds total=%d success=%d client_errors=%d server_errors=%d",
				snap.UptimeSeconds, snap.Total, snap.Success, snap.ClientErrors, snap.ServerErrors)
		})

		if err != nil {
			log.Fatalf("Failed to schedule heartbeat with cron %q: %v", cfg.HeartbeatSchedule, err)
		}
		log.Printf("Scheduled stats heartbeat with cron: %s", cfg.HeartbeatSchedule)
	}

	// Start cron scheduler
	c.Start()
	defer c.Stop()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start server
	go func() {
		log.Printf("Starting server on %s:%s", cfg.Host, cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for shutdown signal
	<-sigChan
	log.Println("Shutting down server...")

	// Stop cron scheduler
	c.Stop()

	// Shutdown HTTP server
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}

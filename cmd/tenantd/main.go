// Tenantd resolves multi-tenant dashboard index patterns.
//
// The daemon fronts an Elasticsearch-compatible backend and answers, per
// tenant, which projects have plugin-generated index patterns and which index
// pattern the dashboard should open by default.
//
// Usage:
//
//	# Start with defaults
//	tenantd
//
//	# Configure via file and environment
//	tenantd -config /etc/tenantd/config.yaml
//	SEARCH_URL=http://search:9200 DASHBOARD_PROJECT_PREFIX=project tenantd
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

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/tenantd/internal/config"
	tenanthttp "github.com/fyrsmithlabs/tenantd/internal/http"
	"github.com/fyrsmithlabs/tenantd/internal/logging"
	"github.com/fyrsmithlabs/tenantd/internal/pattern"
	"github.com/fyrsmithlabs/tenantd/internal/searchstore"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	if args := flag.Args(); len(args) > 0 {
		switch args[0] {
		case "version":
			printVersion()
			os.Exit(0)
		default:
			fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
			fmt.Fprintf(os.Stderr, "\nUsage:\n")
			fmt.Fprintf(os.Stderr, "  tenantd           Start the tenantd daemon\n")
			fmt.Fprintf(os.Stderr, "  tenantd version   Show version information\n")
			os.Exit(1)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		log.Printf("Received signal %v, shutting down gracefully...", sig)
		cancel()
	}()

	if err := run(ctx, *configPath); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}

	log.Println("Server shutdown complete")
}

func printVersion() {
	fmt.Printf("tenantd by Fyrsmith Labs\n")
	fmt.Printf("Version:    %s\n", version)
	fmt.Printf("Commit:     %s\n", gitCommit)
	fmt.Printf("Build Date: %s\n", buildDate)
}

// run starts the tenantd server and blocks until context is cancelled.
func run(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer func() {
		_ = logger.Sync() // Best-effort sync on shutdown
	}()

	logger.Info("Starting tenantd",
		zap.Int("port", cfg.Server.Port),
		zap.String("search_url", cfg.Search.URL),
		zap.String("project_prefix", cfg.Dashboard.ProjectPrefix),
		zap.String("dashboard_version", cfg.Dashboard.Version))

	store, err := searchstore.NewService(searchstore.Config{
		URL:     cfg.Search.URL,
		Timeout: cfg.Search.Timeout.Duration(),
	})
	if err != nil {
		return fmt.Errorf("initializing search client: %w", err)
	}

	resolver, err := pattern.NewResolver(
		pattern.NewCodec(cfg.Dashboard.ProjectPrefix),
		store,
		cfg.Dashboard.Version,
		logger.Named("pattern"),
	)
	if err != nil {
		return fmt.Errorf("initializing resolver: %w", err)
	}

	srv := tenanthttp.NewServer(cfg, resolver, logger.Named("http"))

	logger.Info("Server configured",
		zap.String("health_endpoint", fmt.Sprintf("http://localhost:%d/health", cfg.Server.Port)),
		zap.String("metrics_endpoint", "/metrics"))

	return srv.Start(ctx)
}

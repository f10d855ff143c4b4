package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/haukened/rootwalk/internal/dns/common/log"
	"github.com/haukened/rootwalk/internal/dns/config"
	"github.com/haukened/rootwalk/internal/dns/domain"
	"github.com/haukened/rootwalk/internal/dns/gateways/transport"
	"github.com/haukened/rootwalk/internal/dns/gateways/wire"
	"github.com/haukened/rootwalk/internal/dns/services/resolver"
)

const (
	version = "0.1.0-dev"
	appName = "rootwalk"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

// run resolves the domain named by args and writes the result to out.
// Usage: rootwalk <domain> [server] — the optional server overrides the
// configured root server for this invocation.
func run(args []string, out *os.File) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("usage: %s <domain> [server]", appName)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	if err := log.Configure(cfg.Env, cfg.LogLevel); err != nil {
		return fmt.Errorf("logging configuration error: %w", err)
	}

	target := args[0]
	server := cfg.RootServer
	if len(args) == 2 {
		server = args[1]
	}

	log.Info(map[string]any{
		"version":    version,
		"env":        cfg.Env,
		"log_level":  cfg.LogLevel,
		"domain":     target,
		"server":     server,
		"query_type": cfg.QueryType,
		"max_hops":   cfg.MaxHops,
	}, "Starting resolution")

	engine, err := buildEngine(cfg)
	if err != nil {
		return fmt.Errorf("failed to build resolver: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.TimeoutSeconds)*time.Second)
	defer cancel()

	result, err := engine.Resolve(ctx, target, server)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s %s\n", result.Domain, result.Address)
	return nil
}

// buildEngine constructs the wire codec, the per-hop UDP transport, and
// the resolution engine from the loaded configuration.
func buildEngine(cfg *config.AppConfig) (*resolver.Engine, error) {
	logger := log.GetLogger()

	codec := wire.NewUDPCodec(logger)

	udpClient := transport.NewUDPClient(transport.Options{
		Port:    cfg.Port,
		Timeout: time.Duration(cfg.HopTimeoutSeconds) * time.Second,
		Logger:  logger,
	})

	return resolver.New(resolver.Options{
		Transport:  udpClient,
		Codec:      codec,
		Logger:     logger,
		QueryType:  domain.RRTypeFromString(cfg.QueryType),
		MaxHops:    cfg.MaxHops,
		HopTimeout: time.Duration(cfg.HopTimeoutSeconds) * time.Second,
		Timeout:    time.Duration(cfg.TimeoutSeconds) * time.Second,
	})
}

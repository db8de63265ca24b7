package web

import (
	"context"
	"flag"
	"fmt"

	platformcmd "github.com/louisbranch/onboarding/internal/platform/cmd"
	"github.com/louisbranch/onboarding/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr string `env:"WEB_HTTP_ADDR" envDefault:"localhost:8086"`
	AppName  string `env:"WEB_APP_NAME"`
}

// ParseConfig loads ONBOARDING_WEB_* env defaults, then flags.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.AppName, "app-name", cfg.AppName, "Product name shown in page titles")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the onboarding web server with telemetry.
func Run(ctx context.Context, cfg Config) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceWeb, func(ctx context.Context) error {
		server, err := web.NewServer(web.Config{
			HTTPAddr: cfg.HTTPAddr,
			AppName:  cfg.AppName,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}

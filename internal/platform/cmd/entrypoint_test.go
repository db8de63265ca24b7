package cmd

import (
	"context"
	"errors"
	"flag"
	"testing"

	"github.com/louisbranch/onboarding/internal/platform/otel"
)

type testConfig struct {
	Address string `env:"CMD_TEST_ADDRESS" envDefault:"127.0.0.1:8080"`
	Mode    string `env:"CMD_TEST_MODE" envDefault:"server"`
}

func TestParseConfigReadsPrefixedEnv(t *testing.T) {
	t.Setenv("ONBOARDING_CMD_TEST_ADDRESS", "env:9000")

	cfg := testConfig{}
	if err := ParseConfig(&cfg); err != nil {
		t.Fatalf("load config defaults: %v", err)
	}
	if cfg.Address != "env:9000" {
		t.Fatalf("Address = %q, want env value", cfg.Address)
	}
	if cfg.Mode != "server" {
		t.Fatalf("Mode = %q, want default", cfg.Mode)
	}
}

func TestParseConfigRejectsNilTarget(t *testing.T) {
	if err := ParseConfig[testConfig](nil); err == nil {
		t.Fatal("expected nil target error")
	}
}

func TestParseConfigFromArgsFlagsWinOverEnv(t *testing.T) {
	t.Setenv("ONBOARDING_CMD_TEST_ADDRESS", "configarg:9000")
	t.Setenv("ONBOARDING_CMD_TEST_MODE", "configarg-mode")

	cfg := testConfig{}
	fs := flag.NewFlagSet("configargs", flag.ContinueOnError)
	fs.StringVar(&cfg.Address, "address", "", "address")
	fs.StringVar(&cfg.Mode, "mode", "", "mode")
	if err := ParseConfigFromArgs(&cfg, fs, []string{"-address", "flag:9002"}); err != nil {
		t.Fatalf("parse config and args: %v", err)
	}
	if cfg.Address != "flag:9002" {
		t.Fatalf("expected parsed flag address, got %q", cfg.Address)
	}
	if cfg.Mode != "configarg-mode" {
		t.Fatalf("expected env mode, got %q", cfg.Mode)
	}
}

func TestParseArgsRejectsNilParser(t *testing.T) {
	if err := ParseArgs(nil, []string{}); err == nil {
		t.Fatal("expected parse args to reject nil parser")
	}
}

func TestRunWithTelemetryRejectsMissingInputs(t *testing.T) {
	if err := RunWithTelemetry(context.Background(), "", func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected missing service error")
	}
	if err := RunWithTelemetry(context.Background(), ServiceWeb, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}

func TestRunWithTelemetryShutsDownAfterRun(t *testing.T) {
	var calls []string
	runErr := errors.New("run failed")
	err := RunWithTelemetryAndOptions(context.Background(), ServiceWeb, RunOptions{
		Setup: func(_ context.Context, service string) (otel.Shutdown, error) {
			calls = append(calls, "setup:"+service)
			return func(context.Context) error {
				calls = append(calls, "shutdown")
				return nil
			}, nil
		},
	}, func(context.Context) error {
		calls = append(calls, "run")
		return runErr
	})
	if !errors.Is(err, runErr) {
		t.Fatalf("err = %v, want %v", err, runErr)
	}
	want := []string{"setup:web", "run", "shutdown"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", calls, want)
		}
	}
}

func TestRunWithTelemetryWrapsSetupError(t *testing.T) {
	setupErr := errors.New("exporter down")
	err := RunWithTelemetryAndOptions(context.Background(), ServiceWeb, RunOptions{
		Setup: func(context.Context, string) (otel.Shutdown, error) { return nil, setupErr },
	}, func(context.Context) error {
		t.Fatal("run should not be called")
		return nil
	})
	if !errors.Is(err, setupErr) {
		t.Fatalf("err = %v, want wrapped %v", err, setupErr)
	}
}

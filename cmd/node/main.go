// Command node runs the block-production loop against an empty in-memory
// state until SIGINT or SIGTERM.
//
// Usage:
//
//	node [flags]
//
// Flags:
//
//	--config-path  Path to the TOML configuration file (default: ./config/config.toml)
//	--log-level    Log verbosity: trace, debug, info, warn, error (default: debug)
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	gethlog "github.com/ethereum/go-ethereum/log"

	"github.com/evmcore/evmcore/chain"
	"github.com/evmcore/evmcore/core/state"
	"github.com/evmcore/evmcore/log"
	"github.com/evmcore/evmcore/nodecfg"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("node", flag.ContinueOnError)
	configPath := fs.String("config-path", "./config/config.toml", "path to the TOML configuration file")
	logLevel := fs.String("log-level", "debug", "log verbosity (trace, debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	log.SetDefault(log.NewLogger(gethlog.NewLogger(gethlog.NewTerminalHandlerWithLevel(os.Stderr, log.LevelFromString(*logLevel), true))))

	cfg, err := nodecfg.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "node: %v\n", err)
		return 1
	}

	log.Info("node starting", "config_path", *configPath, "block_time_secs", cfg.General.BlockTimeSecs)

	st := state.New()
	c := chain.New(st, time.Duration(cfg.General.BlockTimeSecs)*time.Second)

	go c.Run()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Info("received signal, shutting down", "signal", sig.String())

	c.Stop()
	return 0
}

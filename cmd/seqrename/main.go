// Command seqrename renames every file in a directory (optionally only
// those ending with a given extension) to a common base name plus a
// sequential numeric or alphabetic suffix, after a preview and an explicit
// confirmation.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/backmassage/seqrename/internal/check"
	"github.com/backmassage/seqrename/internal/config"
	"github.com/backmassage/seqrename/internal/display"
	"github.com/backmassage/seqrename/internal/logging"
	"github.com/backmassage/seqrename/internal/pipeline"
	"github.com/backmassage/seqrename/internal/prompt"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run always returns 0: failures are reported through log messages and end
// the run early. Only a second interrupt exits non-zero (130).
func run(args []string) int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr via fmt.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, args, version); err != nil {
		if !errors.Is(err, config.ErrHelp) && !errors.Is(err, config.ErrVersion) {
			fmt.Fprintf(os.Stderr, "seqrename: %v\n", err)
		}
		return 0
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "seqrename: %v\n", err)
		return 0
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seqrename: %v\n", err)
		return 0
	}
	defer log.Close()

	// Phase 2: Logger available; all status output goes through log.
	display.PrintBanner(os.Stdout)
	log.Debug("seqrename v%s (%s)", version, commit)

	if cfg.CheckOnly {
		dir, err := prompt.ResolveDir(cfg.Dir)
		if err != nil {
			log.Error("%v", err)
			return 0
		}
		check.RunCheck(dir, log)
		return 0
	}

	// Phase 3: Collect whatever the flags left open.
	ui := prompt.New(os.Stdin, os.Stdout)
	job, err := ui.Collect(&cfg)
	if err != nil {
		log.Error("%v", err)
		return 0
	}

	// Phase 4: Signal handling. The first SIGINT/SIGTERM stops the batch
	// between files; a second one exits immediately.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, finishing current file… (again to quit now)")
		cancel()
		<-sigCh
		os.Exit(130)
	}()

	// Phase 5: list → plan → preview → confirm → rename → report.
	if _, err := pipeline.Run(ctx, &cfg, job, log, os.Stdout, ui); err != nil {
		log.Error("%v", err)
	}
	return 0
}

// heartcatch-term plays the heart catching game in a terminal. Move the
// mouse (or use the arrow keys) to steer the basket; Esc or q quits.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"heartcatch/internal/config"
	"heartcatch/internal/gamemode"
	"heartcatch/internal/term"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML tuning file")
	logPath := flag.String("log", "", "append log output to this file")
	flag.Parse()

	if err := run(*configPath, *logPath); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}

func run(configPath, logPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// The terminal is the screen, so logs go to a file or nowhere.
	log.SetOutput(io.Discard)
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	settings := cfg.Settings()
	session := gamemode.NewSession(settings, cfg.Rand())
	err = term.New(screen, session).Run(ctx, settings.Tick)
	log.Printf("exit in phase %s with score %d", session.Phase, session.Catch.Score)

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

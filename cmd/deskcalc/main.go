package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/lixenwraith/deskcalc/app"
	"github.com/lixenwraith/deskcalc/audio"
	"github.com/lixenwraith/deskcalc/terminal"
	"github.com/lixenwraith/deskcalc/ui"
)

var (
	debugFlag = flag.Bool("debug", false, "Write a debug log to logs/deskcalc.log")
	noSound   = flag.Bool("no-sound", false, "Disable key click and error tones")
	monoFlag  = flag.Bool("mono", false, "Render in the terminal default color only")
)

const (
	logDir      = "logs"
	logFileName = "deskcalc.log"
)

// setupLogging routes the stdlib logger to a file when debug is set,
// io.Discard otherwise. Returns the open file, nil when disabled
func setupLogging(enabled bool) *os.File {
	if !enabled {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(logDir, logFileName),
		os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	return f
}

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	backend, err := terminal.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before reporting the crash,
	// so the message is readable and the shell is usable afterwards
	defer func() {
		if r := recover(); r != nil {
			backend.Fini()
			fmt.Fprintf(os.Stderr, "deskcalc crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "stack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := backend.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer backend.Fini()

	sound := audio.Disabled()
	if !*noSound {
		if f, err := audio.NewFeedback(); err == nil {
			sound = f
			defer sound.Close()
		} else {
			// Non-fatal, the calculator runs without sound
			log.Printf("audio init failed: %v", err)
		}
	}

	theme := ui.DefaultTheme()
	if *monoFlag {
		theme = ui.MonoTheme()
	}

	a := app.New(backend, sound, theme)
	if err := a.Run(); err != nil {
		backend.Fini()
		fmt.Fprintf(os.Stderr, "deskcalc: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"log"
	"os"
	"os/signal"

	"github.com/eternalgreen/eternal-green/internal/config"
	"github.com/eternalgreen/eternal-green/internal/injector"
	"github.com/eternalgreen/eternal-green/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

const appVersion = "1.0.0"

func main() {
	flags, err := config.ParseFlags(appVersion)
	if err != nil {
		log.Fatal(err)
	}

	mgr := config.NewManager(flags.ConfigPath)
	cfg, err := mgr.Load()
	if err != nil {
		log.Fatal(err)
	}

	inj, err := injector.NewSystem()
	if err != nil {
		log.Fatal(err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, getSignalsForPlatform()...)

	model := ui.InitialModel(mgr, cfg, inj)
	model.SetVersion(appVersion)
	model.IntervalOverride = flags.IntervalOverride

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithoutSignalHandler(),
	)

	// Deliver signals as a message so a running loop stops cleanly and its
	// stop event reaches the activity log before the program exits.
	go func() {
		sig := <-sigChan
		log.Printf("received signal: %v", sig)
		p.Send(ui.ShutdownMsg{})
	}()

	if flags.Start {
		go p.Send(ui.StartRequestMsg{})
	}

	if _, err := p.Run(); err != nil {
		log.Printf("error running program: %v", err)
		os.Exit(1)
	}
}

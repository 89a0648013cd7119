package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/blindsystems/bop/internal/config"
	"github.com/blindsystems/bop/internal/engine"
	"github.com/blindsystems/bop/internal/errmsg"
	"github.com/blindsystems/bop/internal/log"
	"github.com/blindsystems/bop/internal/loop"
	"github.com/blindsystems/bop/internal/player"
	"github.com/blindsystems/bop/internal/sidecar"
	"github.com/blindsystems/bop/internal/ui"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: bop <audio file>")
		os.Exit(2)
	}
	path := os.Args[1]

	if err := log.Setup(); err != nil {
		// Logging stays on discard; not worth refusing to start over.
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitialize, err))
	}

	cfg := config.Load()

	// A bare file name is looked up in the last opened folder.
	path = cfg.ResolveAudioPath(path)

	eng := engine.NewBeep()
	defer eng.Close()

	p := player.New(eng)
	p.SetVolume(cfg.DefaultVolume)

	if err := p.Load(path); err != nil {
		fmt.Fprintln(os.Stderr, errmsg.FormatWith(errmsg.OpLoadFile, path, err))
		os.Exit(1)
	}

	// Segments load at the file-open boundary, save at close.
	store := sidecar.Load(path)

	ctl := loop.NewController()
	poller := loop.NewPoller(p, ctl)

	ctx, cancel := context.WithCancel(context.Background())
	go poller.Run(ctx)

	model := ui.New(p, ctl, poller.Subscription(), store)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		cancel()
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}

	// Stop the poll loop and wait for it to finish before tearing down the
	// engine; no tick may run against a closed engine.
	cancel()
	<-poller.Subscription().Done
	p.Stop()

	sidecar.Save(path, store)

	cfg.LastOpenedFolder = filepath.Dir(path)
	cfg.DefaultVolume = p.Volume()
	config.Save(cfg)
}

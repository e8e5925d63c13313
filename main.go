package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"midifarm/config"
	"midifarm/debug"
	"midifarm/farm"
	"midifarm/midiport"
	"midifarm/theme"
	"midifarm/tui"
)

func main() {
	ports := flag.Int("n", 0, "number of pass-through ports (overrides config)")
	spawner := flag.String("spawner", "", "path to the spawner binary")
	headless := flag.Bool("no-tui", false, "run without the monitor")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	n := cfg.Farm.Ports
	if *ports > 0 {
		n = *ports
	}
	spawnerPath := cfg.Farm.SpawnerPath
	if *spawner != "" {
		spawnerPath = *spawner
	}
	path, err := farm.SpawnerPath(spawnerPath)
	if err != nil {
		fmt.Printf("Error locating spawner binary: %v\n", err)
		os.Exit(1)
	}

	debug.Enable()
	defer debug.Disable()

	f := farm.New(n, path)
	if err := f.Start(); err != nil {
		fmt.Printf("Warning: %v\n", err)
	}
	defer f.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watcher := midiport.NewWatcher(f.Names())
	go watcher.Run(ctx)

	if *headless || !cfg.Farm.Monitor {
		fmt.Printf("midifarm: %d pass-through ports, ctrl-c to stop\n", n)
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		return
	}

	palette := theme.Default()
	if cfg.Player.Palette != "" {
		if p, err := theme.LoadGPL(cfg.Player.Palette); err == nil {
			palette = p
		} else {
			debug.Log("main", "palette %s: %v", cfg.Player.Palette, err)
		}
	}

	m := tui.NewModel(f, watcher, theme.New(palette))
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

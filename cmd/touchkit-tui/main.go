// touchkit-tui is a terminal specimen view. Drag a line left with the mouse
// to delete it or right to copy it.
package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stackjustify/touchkit"
	"github.com/stackjustify/touchkit/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	debug := flag.Bool("debug", false, "log gesture decisions to stderr")
	flag.Parse()

	cfg := touchkit.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = touchkit.LoadConfig(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	m := tui.NewModel(cfg, touchkit.SystemClipboard{})
	if *debug {
		// The alt screen owns stdout, so debug lines go to a file.
		f, err := tea.LogToFile("touchkit-debug.log", "touchkit")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		m.Recognizer().SetDebugMode(true)
		m.Recognizer().SetDebugOutput(f)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

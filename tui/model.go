package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"midifarm/farm"
	"midifarm/midiport"
	"midifarm/theme"
	"midifarm/widgets"
)

// Model is the farm monitor: one row per spawner process showing whether
// the process is alive and whether its port is visible to the subsystem.
type Model struct {
	Farm    *farm.Farm
	Watcher *midiport.Watcher
	Theme   *theme.Theme

	children []farm.ChildInfo
	visible  map[string]bool
	quitting bool
}

type FarmEventMsg farm.Event

type PortEventMsg midiport.PortEvent

type refreshMsg time.Time

func NewModel(f *farm.Farm, w *midiport.Watcher, th *theme.Theme) Model {
	return Model{
		Farm:     f,
		Watcher:  w,
		Theme:    th,
		children: f.Children(),
		visible:  map[string]bool{},
	}
}

func ListenForFarm(f *farm.Farm) tea.Cmd {
	return func() tea.Msg {
		return FarmEventMsg(<-f.Events())
	}
}

func ListenForPorts(w *midiport.Watcher) tea.Cmd {
	return func() tea.Msg {
		return PortEventMsg(<-w.Events())
	}
}

func refresh() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return refreshMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		ListenForFarm(m.Farm),
		ListenForPorts(m.Watcher),
		refresh(),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

	case FarmEventMsg:
		m.children = m.Farm.Children()
		return m, ListenForFarm(m.Farm)

	case PortEventMsg:
		m.visible = m.Watcher.Visible()
		return m, ListenForPorts(m.Watcher)

	case refreshMsg:
		m.children = m.Farm.Children()
		m.visible = m.Watcher.Visible()
		return m, refresh()
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return "stopping farm...\n"
	}

	th := m.Theme
	title := lipgloss.NewStyle().Foreground(th.Accent()).Bold(true)
	muted := lipgloss.NewStyle().Foreground(th.Muted())
	label := lipgloss.NewStyle().Foreground(th.FG())

	var b strings.Builder
	b.WriteString(title.Render("midifarm"))
	b.WriteString(muted.Render(fmt.Sprintf("  %d pass-through ports", len(m.children))))
	b.WriteString("\n\n")

	for _, c := range m.children {
		b.WriteString("  ")
		b.WriteString(m.childSymbol(c))
		b.WriteString(" ")
		b.WriteString(label.Render(fmt.Sprintf("%-12s", c.Name)))
		b.WriteString(m.portSymbol(c.Name))
		b.WriteString(muted.Render(fmt.Sprintf("  pid %-8d %s", c.PID, c.State)))
		if c.Err != nil {
			b.WriteString(lipgloss.NewStyle().Foreground(th.Warning()).Render("  " + c.Err.Error()))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.healthMeter())
	b.WriteString("\n\n")
	b.WriteString(widgets.RenderLegendItem(th.Symbols.ChildAlive, th.Palette.Lookup(theme.RoleSuccess), "process", "spawner running"))
	b.WriteString("\n")
	b.WriteString(widgets.RenderLegendItem(th.Symbols.PortUp, th.Palette.Lookup(theme.RoleActive), "port", "registered with ALSA"))
	b.WriteString("\n\n")
	b.WriteString(muted.Render("  q quit"))
	b.WriteString("\n")

	return b.String()
}

// healthMeter shows the fraction of ports both running and registered.
func (m Model) healthMeter() string {
	th := m.Theme
	up := 0
	for _, c := range m.children {
		if c.State == farm.StateRunning && m.visible[c.Name] {
			up++
		}
	}
	level := 0.0
	if len(m.children) > 0 {
		level = float64(up) / float64(len(m.children))
	}
	meter := widgets.RenderMeter(16, level, th.Symbols.ActivityBar, func(norm float64) [3]uint8 {
		return th.Palette.Lookup(norm)
	})
	label := lipgloss.NewStyle().Foreground(th.Muted())
	return fmt.Sprintf("  %s %s", meter, label.Render(fmt.Sprintf("%d/%d up", up, len(m.children))))
}

func (m Model) childSymbol(c farm.ChildInfo) string {
	th := m.Theme
	if c.State == farm.StateRunning {
		return widgets.RenderDot(th.Symbols.ChildAlive, th.Palette.Lookup(theme.RoleSuccess))
	}
	return widgets.RenderDot(th.Symbols.ChildDead, th.Palette.Lookup(theme.RoleWarning))
}

func (m Model) portSymbol(name string) string {
	th := m.Theme
	if m.visible[name] {
		return widgets.RenderDot(th.Symbols.PortUp, th.Palette.Lookup(theme.RoleActive))
	}
	return widgets.RenderDot(th.Symbols.PortDown, th.Palette.Lookup(theme.RoleMuted))
}

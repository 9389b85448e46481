package app

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/sunseesiu/quice/pkg/tracelog"
)

// levelColors maps trace levels to the colors used in the event table,
// mirroring the HTML report's palette.
var levelColors = map[string]tcell.Color{
	"DEBUG": tcell.ColorBlue,
	"INFO":  tcell.ColorGreen,
	"WARN":  tcell.ColorOrange,
	"ERROR": tcell.ColorRed,
	"FATAL": tcell.ColorPurple,
}

// App orchestrates the trace viewer TUI around a single tracelog.Logger.
type App struct {
	*tview.Application
	config Config
	trace  *tracelog.Logger

	table  *tview.Table
	status *tview.TextView
	layout *tview.Flex
}

// New creates and initializes the viewer for the given trace.
func New(cfg Config, trace *tracelog.Logger) *App {
	a := &App{
		Application: tview.NewApplication(),
		config:      cfg,
		trace:       trace,
	}

	a.table = tview.NewTable().
		SetBorders(false).
		SetFixed(1, 0).
		SetSelectable(true, false)
	a.table.SetBorder(true).SetTitle(" " + cfg.Title + " ")

	a.status = tview.NewTextView().SetDynamicColors(true)

	a.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.table, 0, 1, true).
		AddItem(a.status, 1, 0, false)

	a.SetRoot(a.layout, true)
	a.setupInputCapture()
	a.Refresh()
	return a
}

// setupInputCapture defines application-wide keybindings.
func (a *App) setupInputCapture() {
	a.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyCtrlC, event.Rune() == 'q':
			a.Stop()
			return nil
		case event.Rune() == 'e':
			if err := a.ExportReport(); err != nil {
				a.setStatus(fmt.Sprintf("[red]Export failed: %v", err))
			} else {
				a.setStatus(fmt.Sprintf("Report written to %s", a.config.ReportPath))
			}
			return nil
		case event.Rune() == 'r':
			a.Refresh()
			a.setStatus("Refreshed.")
			return nil
		case event.Rune() == 'c':
			a.trace.Clear()
			a.Refresh()
			a.setStatus("Trace cleared.")
			return nil
		}
		return event
	})
}

// Refresh rebuilds the event table from the current trace buffer.
func (a *App) Refresh() {
	a.table.Clear()
	for col, name := range []string{"Level", "Message", "Trace", "Escape"} {
		a.table.SetCell(0, col, tview.NewTableCell(name).
			SetSelectable(false).
			SetAttributes(tcell.AttrBold))
	}

	events := a.trace.Events()
	for i, e := range events {
		label := e.Level.Label()
		color, ok := levelColors[label]
		if !ok {
			color = tcell.ColorGray
		}
		trace := fmt.Sprintf("%s:%d %s:%s",
			e.Location.File, e.Location.Line, e.Location.Class, e.Location.Function)

		a.table.SetCell(i+1, 0, tview.NewTableCell(label).SetTextColor(color))
		a.table.SetCell(i+1, 1, tview.NewTableCell(e.Message))
		a.table.SetCell(i+1, 2, tview.NewTableCell(trace))
		a.table.SetCell(i+1, 3, tview.NewTableCell(fmt.Sprintf("%.6f", e.EscapeTime)))
	}

	a.setStatus(fmt.Sprintf("%d events | e: export  r: refresh  c: clear  q: quit", len(events)))
}

// ExportReport writes the HTML report to the configured path.
func (a *App) ExportReport() error {
	if err := os.WriteFile(a.config.ReportPath, []byte(a.trace.ToHTML()), 0644); err != nil {
		return fmt.Errorf("writing report %s: %w", a.config.ReportPath, err)
	}
	return nil
}

func (a *App) setStatus(text string) {
	a.status.SetText(" " + text)
}

// Run starts the tview application event loop.
func (a *App) Run() error {
	return a.Application.Run()
}

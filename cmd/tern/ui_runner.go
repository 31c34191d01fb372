package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"tern/internal/driver"
	"tern/internal/ui"
)

type checkOutcome struct {
	results []driver.CheckResult
	err     error
}

// runCheckDirWithUI checks a directory while rendering a Bubble Tea
// progress view. Events flow from the driver into the model over a
// buffered channel; the channel closes when the run finishes, which quits
// the program.
func runCheckDirWithUI(ctx context.Context, title string, files []string, dir string, jobs int, opts driver.CheckOptions) ([]driver.CheckResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Events = func(ev driver.Event) { events <- ev }
		_, results, err := driver.CheckDir(ctx, dir, jobs, optsCopy)
		outcomeCh <- checkOutcome{results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}

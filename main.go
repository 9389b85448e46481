package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sunseesiu/quice/app"
	"github.com/sunseesiu/quice/pkg/tracelog"
)

func main() {
	cliArgs := app.ParseCLIArgs()
	cfg, err := app.LoadConfig(cliArgs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	trace := tracelog.New()
	if cfg.Demo {
		app.RunDemoTrace(trace)
	}

	a := app.New(cfg, trace)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		a.Stop()
	}()

	if err := a.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Always leave a report behind for the run that just ended.
	if err := a.ExportReport(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("Report written to %s\n", cfg.ReportPath)
}

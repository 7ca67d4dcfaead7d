package main

import (
	"fmt"
	"os"
	_ "time/tzdata"

	"github.com/alecthomas/kong"

	"github.com/m04kA/SMC-SchedulingService/internal/cli"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

var CLI struct {
	Config   string `help:"Config file path." type:"path" default:"config.toml" env:"SLOTCTL_CONFIG"`
	LogLevel string `help:"Log level." enum:"debug,info,warn,error" default:"warn"`

	Slots   cli.SlotsCmd   `cmd:"" help:"Print available slots for a service on a date."`
	Migrate cli.MigrateCmd `cmd:"" help:"Apply pending schema migrations."`
	Series  cli.SeriesCmd  `cmd:"" help:"Print the sessions of a booking series."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("slotctl"),
		kong.Description("Availability and booking series tool for the scheduling service"),
		kong.UsageOnError(),
	)

	log, err := logger.NewStderr(CLI.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	err = ctx.Run(&cli.Context{
		ConfigPath: CLI.Config,
		Out:        os.Stdout,
		Log:        log,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

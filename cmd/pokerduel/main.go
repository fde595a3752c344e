package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Debug  bool   `help:"Enable debug logging"`
	Config string `short:"c" help:"Path to an HCL config file" default:"pokerduel.hcl"`
}

type CLI struct {
	Globals
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Eval    EvalCmd          `cmd:"" default:"withargs" help:"Evaluate hand duels from a file"`
	Serve   ServeCmd         `cmd:"" help:"Run the websocket evaluation server"`
	Tui     TuiCmd           `cmd:"" help:"Browse duel results interactively"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokerduel"),
		kong.Description("Five-card poker hand duel evaluator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

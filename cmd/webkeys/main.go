package main

import (
	"os"
	"strings"

	"github.com/Alia5/webkeys/internal/cmd"
	"github.com/Alia5/webkeys/internal/config"
	"github.com/Alia5/webkeys/internal/log"

	"github.com/alecthomas/kong"
	"golang.org/x/term"
)

func main() {
	userCfg := findUserConfig(os.Args[1:])

	var cli config.CLI
	opts := []kong.Option{
		kong.Name("webkeys"),
		kong.Description("Translate between virtual keys, invented scancodes, KeyboardEvent.code values and legacy keyCodes"),
		kong.UsageOnError(),
	}
	// Load configuration from JSON/YAML/TOML in priority order; flags/env override config values.
	opts = append(opts, config.Options(userCfg)...)
	ctx := kong.Parse(&cli, opts...)

	logger, closeFiles, err := log.SetupLogger(cli.Log)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() {
		for _, c := range closeFiles {
			_ = c.Close()
		}
	}()

	ctx.Bind(logger)
	ctx.Bind(&cmd.Output{
		W:          os.Stdout,
		IsTerminal: term.IsTerminal(int(os.Stdout.Fd())),
	})

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv("WEBKEYS_CONFIG")
}

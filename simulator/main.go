package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rook-computer/lcdui/internal/app"
	"github.com/rook-computer/lcdui/internal/buttons"
	"github.com/rook-computer/lcdui/internal/cli"
	"github.com/rook-computer/lcdui/internal/render"
	"github.com/rook-computer/lcdui/internal/state"
	"github.com/rook-computer/lcdui/internal/web"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

type simOptions struct {
	cli.Options
	pngPath  string
	pngScale int
	headless bool
}

func rootCommand() *cobra.Command {
	var opts simOptions
	cmd := &cobra.Command{
		Use:          "lcdui-sim",
		Short:        "Run the frame cycle in a terminal",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}
	flags := cmd.Flags()
	opts.Register(flags, "./lcdui-sim.log", ":8080")
	flags.StringVar(&opts.pngPath, "png", "", "also write every commit to this PNG file")
	flags.IntVar(&opts.pngScale, "png-scale", 4, "PNG pixel scale")
	flags.BoolVar(&opts.headless, "headless", false, "do not draw in the terminal or read keys")
	return cmd
}

func run(cmd *cobra.Command, opts simOptions) error {
	cfg, err := opts.Config(cmd)
	if err != nil {
		return err
	}
	logger, closer, err := opts.Logger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	if closer != nil {
		defer closer.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var sinks []render.Sink
	var btns buttons.Buttons = buttons.NewNoopButtons()
	if !opts.headless {
		sinks = append(sinks, render.NewTerminalSink(os.Stdout))
		term := buttons.NewTerminalButtons(os.Stdin)
		term.Logger = logger
		btns = term

		fmt.Print("\x1b[2J\x1b[?25l")
		defer fmt.Print("\x1b[?25h\r\n")
	}
	if opts.pngPath != "" {
		sinks = append(sinks, render.PNGSink{Path: opts.pngPath, Scale: opts.pngScale})
	}

	canvas, err := cli.NewCanvas(cfg, logger, sinks...)
	if err != nil {
		return err
	}
	u, stages, err := cli.NewEngine(cfg, canvas, logger)
	if err != nil {
		return err
	}

	a := app.New(u, state.NewStore(), nil, btns)
	a.Logger = logger
	a.Stages = stages
	if cfg.ListenAddr != "" {
		server := web.NewHTTPServer(cfg.ListenAddr, a)
		server.DevMode = cfg.DevMode
		server.Logger = logger
		a.Web = server
	}

	err = a.Start(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

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
	"github.com/rook-computer/lcdui/internal/system"
	"github.com/rook-computer/lcdui/internal/web"
)

const envStdioLog = "LCDUI_STDIO_LOG"

func main() {
	if err := rootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	var (
		opts     cli.Options
		fbPath   string
		stdioLog string
	)
	cmd := &cobra.Command{
		Use:          "lcdui",
		Short:        "Cycle frames on the device framebuffer",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, fbPath, stdioLog)
		},
	}
	flags := cmd.Flags()
	opts.Register(flags, "./lcdui-debug.log", "")
	flags.StringVar(&fbPath, "fb", render.DefaultFBDevice, "framebuffer device")
	flags.StringVar(&stdioLog, "stdio-log", "", "redirect stdout+stderr (including panics) to this file; also "+envStdioLog)
	return cmd
}

func run(cmd *cobra.Command, opts cli.Options, fbPath, stdioLog string) error {
	// The console is left in graphics mode on a crash, so panics must
	// land in a file to be readable.
	if stdioLog == "" {
		stdioLog = os.Getenv(envStdioLog)
	}
	if err := system.RedirectStdIO(stdioLog); err != nil {
		fmt.Println("stdio log redirect error:", err)
	}

	cfg, err := opts.Config(cmd)
	if err != nil {
		return err
	}
	logger, closer, err := opts.Logger()
	if err != nil {
		fmt.Println(err)
	}
	if closer != nil {
		defer closer.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sink := render.NewFBSink(fbPath)
	sink.Logger = logger
	if err := sink.Open(); err != nil {
		return err
	}
	defer sink.Close()

	canvas, err := cli.NewCanvas(cfg, logger, sink)
	if err != nil {
		return err
	}
	u, stages, err := cli.NewEngine(cfg, canvas, logger)
	if err != nil {
		return err
	}

	restore := system.EnterGraphics(logger)
	defer restore()

	btns := buttons.NewKeyboardButtons()
	btns.Logger = logger

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

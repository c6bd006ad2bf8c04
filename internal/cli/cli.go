// Package cli holds the setup shared by the device and simulator binaries:
// flags, configuration precedence, logging and the stock frame set.
package cli

import (
	"fmt"
	"io"
	"net"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rook-computer/lcdui/internal/app"
	"github.com/rook-computer/lcdui/internal/app/frames"
	"github.com/rook-computer/lcdui/internal/config"
	"github.com/rook-computer/lcdui/internal/render"
	"github.com/rook-computer/lcdui/internal/system"
	"github.com/rook-computer/lcdui/internal/ui"
)

// Options are the flags common to both binaries.
type Options struct {
	ConfigPath string
	Debug      bool
	LogPath    string
	Listen     string
	DevMode    bool
	FPS        int
}

// Register adds the flags. defaultListen applies when neither the file nor
// the environment sets a listen address.
func (o *Options) Register(flags *pflag.FlagSet, defaultLog, defaultListen string) {
	flags.StringVarP(&o.ConfigPath, "config", "c", "", "YAML configuration file")
	flags.BoolVar(&o.Debug, "debug", false, "enable debug logging to --log")
	flags.StringVar(&o.LogPath, "log", defaultLog, "debug log file")
	flags.StringVar(&o.Listen, "listen", defaultListen, "HTTP API listen address; also "+config.EnvListenAddr)
	flags.BoolVar(&o.DevMode, "dev", false, "permissive CORS on the API; also "+config.EnvDevMode)
	flags.IntVar(&o.FPS, "fps", 0, "target refresh rate; also "+config.EnvTargetFPS)
}

// Config loads the file, then the environment, then the flags set on cmd.
func (o *Options) Config(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return config.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("listen") || cfg.ListenAddr == "" {
		cfg.ListenAddr = o.Listen
	}
	if flags.Changed("dev") {
		cfg.DevMode = o.DevMode
	}
	if flags.Changed("fps") {
		cfg.TargetFPS = o.FPS
	}
	return cfg, cfg.Validate()
}

// Logger opens the debug log. The closer is nil when logging is off.
func (o *Options) Logger() (app.Logger, io.Closer, error) {
	if !o.Debug {
		return app.NoopLogger{}, nil, nil
	}
	f, err := os.OpenFile(o.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return app.NoopLogger{}, nil, fmt.Errorf("open debug log: %w", err)
	}
	logger := app.NewFileLogger(f)
	logger.Infof("main", "debug logging enabled")
	return logger, f, nil
}

// NewCanvas builds a canvas sized and fonted from cfg.
func NewCanvas(cfg config.Config, logger app.Logger, sinks ...render.Sink) (*render.Canvas, error) {
	face, err := render.LoadFace(cfg.Font, cfg.FontSize)
	if err != nil {
		return nil, err
	}
	c := render.NewCanvas(cfg.Width, cfg.Height, face, sinks...)
	c.Logger = logger
	return c, nil
}

// NewEngine configures an engine on surface and returns the loading stages
// that install the stock frames.
func NewEngine(cfg config.Config, surface render.Surface, logger app.Logger) (*ui.UI, []ui.LoadingStage, error) {
	u := ui.New(surface)
	u.SetLogger(logger)
	if err := cfg.Apply(u); err != nil {
		return nil, nil, err
	}

	var addrs []string
	stages := []ui.LoadingStage{
		{Process: "network", Callback: func() {
			var err error
			if addrs, err = system.IPv4Addrs(); err != nil {
				logger.Errorf("main", "list addresses: %v", err)
			}
		}},
		{Process: "frames", Callback: func() {
			u.SetFrames(StockFrames(addrs, APIURL(cfg.ListenAddr, addrs)))
			u.SetOverlays([]ui.Overlay{frames.TimeOverlay{}})
		}},
	}
	return u, stages, nil
}

// StockFrames is the frame set both binaries show. The QR frame is added
// when apiURL is set.
func StockFrames(addrs []string, apiURL string) []ui.Frame {
	list := []ui.Frame{
		frames.TextFrame{Title: "lcdui", Body: "arrows or 1-9 to change frames"},
		frames.ClockFrame{Layout: "Jan 2"},
		frames.StatusFrame{Title: "Status", Lines: func(st *ui.UiState) []string {
			lines := []string{fmt.Sprintf("state %s", st.FrameState())}
			if len(addrs) == 0 {
				return append(lines, "offline")
			}
			return append(lines, addrs...)
		}},
	}
	if apiURL != "" {
		list = append(list, frames.NewQRFrame(apiURL, "API"))
	}
	return list
}

// APIURL turns a listen address into a URL a phone on the same network can
// open. An empty listen address disables the API and returns "".
func APIURL(listen string, addrs []string) string {
	if listen == "" {
		return ""
	}
	host, port, err := net.SplitHostPort(listen)
	if err != nil {
		return ""
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
		if len(addrs) > 0 {
			host = addrs[0]
		}
	}
	return "http://" + net.JoinHostPort(host, port) + "/api/v1/state"
}

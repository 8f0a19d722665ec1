package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Treata11/MuVis-v2.1.1/curves"
	"github.com/Treata11/MuVis-v2.1.1/logging"
	"github.com/Treata11/MuVis-v2.1.1/stream"
)

func newServeCommand() *cobra.Command {
	var (
		addr       string
		modeName   string
		optionName string
		fps        int
		width      float64
		height     float64
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Stream demo curve frames to WebSocket viewers",
		Long: `Serve renders the built-in demo spectrum through the curve engine at a
fixed frame rate and broadcasts each frame as JSON to every WebSocket
client connected on /stream.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := stream.ParseMode(modeName)
			if err != nil {
				return err
			}
			option, err := curves.ParseSynthOption(optionName)
			if err != nil {
				return err
			}
			if fps < 1 || fps > 240 {
				return fmt.Errorf("serve: fps %d outside [1, 240]", fps)
			}
			if width <= 0 || height <= 0 {
				return fmt.Errorf("serve: viewport %gx%g must be positive", width, height)
			}
			return runServe(addr, mode, option, fps, curves.Viewport{Width: width, Height: height})
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8787", "listen address")
	cmd.Flags().StringVar(&modeName, "mode", string(stream.ModeElliptical),
		"curve mode: elliptical, spiral, or lissajous")
	cmd.Flags().StringVar(&optionName, "option", "",
		"lissajous variant: multi-hue, multi-hue-baseband, mono-hue, mono-hue-baseband")
	cmd.Flags().IntVar(&fps, "fps", 30, "frames per second")
	cmd.Flags().Float64Var(&width, "width", 800, "viewport width in pixels")
	cmd.Flags().Float64Var(&height, "height", 800, "viewport height in pixels")
	return cmd
}

func runServe(addr string, mode stream.Mode, option curves.SynthOption, fps int, vp curves.Viewport) error {
	logger := logging.WithFields(logging.Fields{"component": "serve"})

	cfg := curves.DefaultConfig()
	cfg.SynthOption = option
	engine, err := curves.NewEngine(cfg)
	if err != nil {
		return err
	}
	source, err := newDemoSource(engine.Topology())
	if err != nil {
		return err
	}
	broadcaster, err := stream.NewBroadcaster(nil)
	if err != nil {
		return err
	}
	defer broadcaster.Close()

	mux := http.NewServeMux()
	mux.Handle("/stream", broadcaster)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok\n"))
	})
	server := &http.Server{Addr: addr, Handler: mux}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("listening", logging.Fields{
			"addr": addr,
			"mode": string(mode),
			"fps":  fps,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	start := time.Now()

	for {
		select {
		case <-ctx.Done():
			logger.Info("shutting down")
			broadcaster.Close()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)

		case err := <-serverErr:
			return err

		case <-ticker.C:
			frame := renderFrame(engine, source, mode, time.Since(start).Seconds(), vp)
			if err := broadcaster.Broadcast(frame); err != nil {
				if errors.Is(err, stream.ErrClosed) {
					return nil
				}
				logger.Warn("broadcast failed", logging.Fields{"error": err.Error()})
			}
		}
	}
}

// renderFrame runs one engine pass for the selected mode
func renderFrame(engine *curves.Engine, source *demoSource, mode stream.Mode, now float64, vp curves.Viewport) *stream.Frame {
	spectrum := source.Spectrum(now)
	switch mode {
	case stream.ModeSpiral:
		return stream.SpiralFrame(now, vp, engine.Spiral(spectrum, vp))
	case stream.ModeLissajous:
		list := engine.SelectPeaks(source.Candidates())
		return stream.LissajousFrame(now, vp, engine.Lissajous(list, now, vp))
	default:
		return stream.EllipticalFrame(now, vp, engine.Elliptical(spectrum, vp))
	}
}

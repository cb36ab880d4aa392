package shadows4d

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/muesli/termenv"
)

func Run(cfgPath string) error {
	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		return err
	}
	reg, err := BuildScene(cfg)
	if err != nil {
		return err
	}
	DebugLog("Scene: %d shapes, %d active", reg.Len(), len(reg.Active()))

	if Dump {
		return DumpScene(os.Stdout, reg, termenv.EnvColorProfile())
	}

	if Watch {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return WatchLight(ctx, cfgPath, reg, func(LightState) {
			if Debug {
				_ = DumpScene(os.Stderr, reg, termenv.EnvColorProfile())
			}
		})
	}

	start := time.Now()
	if PNG {
		prefix := strings.TrimSuffix(cfg.Render.Out, ".gif")
		names, err := SavePNGSequence(reg, cfg.Render, prefix)
		if err != nil {
			return err
		}
		DebugLog("Saved %d PNGs with prefix %s in %s", len(names), prefix, time.Since(start))
		return nil
	}
	if err := SaveAnimatedGIF(reg, cfg.Render, cfg.Render.Out); err != nil {
		return err
	}
	DebugLog("Saved GIF %s in %s", cfg.Render.Out, time.Since(start))
	return nil
}

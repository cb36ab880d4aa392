package shadows4d

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// ReloadLight re-reads the light section of the config at path and moves the
// registry's light. It reports whether the light actually moved.
func ReloadLight(reg *Registry, path string) (bool, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return false, err
	}
	pos, w := cfg.Light.Build()
	return reg.MoveLight(pos, w), nil
}

// WatchLight follows the config file at path and moves the light whenever the file
// is written, until ctx is done. moved, if not nil, is called after each move.
// A broken file is logged and skipped so that editing can continue.
func WatchLight(ctx context.Context, path string, reg *Registry, moved func(LightState)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	// Editors often replace the file, so watch its directory.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return err
	}
	target := filepath.Clean(path)
	slog.Info("watching config", "path", target)
	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", "err", err)
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			changed, err := ReloadLight(reg, path)
			if err != nil {
				slog.Warn("reload failed", "path", target, "err", err)
				continue
			}
			if !changed {
				continue
			}
			st := reg.Light.State()
			slog.Info("light moved", "position", st.Position, "w", st.W)
			if moved != nil {
				moved(st)
			}
		}
	}
}

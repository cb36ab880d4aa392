package shadows4d

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lightScene(w Real) string {
	return fmt.Sprintf(`{"light": {"position": {"X": 0, "Y": 5, "Z": 0}, "w": %g},
  "shapes3d": [{"name": "c", "kind": "cube", "center": {"X": 0, "Y": 1, "Z": 0}}]}`, w)
}

func TestReloadLight(t *testing.T) {
	path := writeFile(t, "scene.json", lightScene(10))
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	reg, err := BuildScene(cfg)
	require.NoError(t, err)

	moved, err := ReloadLight(reg, path)
	require.NoError(t, err)
	assert.False(t, moved)

	require.NoError(t, os.WriteFile(path, []byte(lightScene(3)), 0o644))
	moved, err = ReloadLight(reg, path)
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, 3.0, reg.Light.State().W)

	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
	_, err = ReloadLight(reg, path)
	assert.Error(t, err)
	assert.Equal(t, 3.0, reg.Light.State().W, "a broken file leaves the light alone")
}

func TestWatchLight(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.json")
	require.NoError(t, os.WriteFile(path, []byte(lightScene(10)), 0o644))
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	reg, err := BuildScene(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	moved := make(chan LightState, 16)
	done := make(chan error, 1)
	go func() { done <- WatchLight(ctx, path, reg, func(st LightState) { moved <- st }) }()

	// the watcher may not be ready for the first writes, so keep writing new values
	w := 1.0
	require.Eventually(t, func() bool {
		if err := os.WriteFile(path, []byte(lightScene(w)), 0o644); err != nil {
			return false
		}
		w++
		select {
		case st := <-moved:
			return st.W > 0 && st.W < 10
		case <-time.After(50 * time.Millisecond):
			return false
		}
	}, 5*time.Second, 20*time.Millisecond)

	// other files in the directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte(lightScene(2)), 0o644))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

package logger

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_ReadsEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("LOG_OUTPUT", "both")
	t.Setenv("LOG_PATH", "/tmp/glow-logs")

	cfg := DefaultConfig()
	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "both", cfg.Output)
	assert.Equal(t, "/tmp/glow-logs", cfg.LogPath)
	assert.Equal(t, "provision.log", cfg.AppFile)
}

func TestDefaultConfig_InvalidNumberFallsBack(t *testing.T) {
	t.Setenv("LOG_MAX_SIZE", "abc")

	cfg := DefaultConfig()
	assert.Equal(t, 10, cfg.MaxSize)
	assert.Equal(t, "file", cfg.Output)
}

func TestAppLogger_WritesFileAfterShutdown(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(&LogConfig{
		Level:   "info",
		Format:  "json",
		Output:  "file",
		MaxSize: 1,
		LogPath: dir,
		AppFile: "provision.log",
	}))

	GetAppLogger().WithField("collection", "users").Info("Created collection")
	Shutdown()

	data, err := os.ReadFile(filepath.Join(dir, "provision.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"Created collection"`)
	assert.Contains(t, string(data), `"collection":"users"`)
}

func TestGetLogger_ReturnsSameInstance(t *testing.T) {
	require.NoError(t, Init(&LogConfig{Level: "info", Format: "text", Output: "stdout"}))
	defer Shutdown()

	assert.Same(t, GetAppLogger(), GetLogger("app"))
	assert.NotSame(t, GetAppLogger(), GetLogger("other"))
}

func TestAsyncHook_FlushesOnClose(t *testing.T) {
	var buf bytes.Buffer
	hook := NewAsyncHook([]io.Writer{&buf}, 0)

	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	log.AddHook(hook)

	for i := 0; i < 50; i++ {
		log.WithField("i", i).Info("probe")
	}
	require.NoError(t, hook.Close())

	assert.Equal(t, 50, bytes.Count(buf.Bytes(), []byte("msg=probe")))

	// Sau khi đóng, entry được ghi trực tiếp
	log.Info("after close")
	assert.Contains(t, buf.String(), "after close")
	assert.NoError(t, hook.Close())
}

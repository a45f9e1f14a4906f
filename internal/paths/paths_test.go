package paths

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every platform branch must land in the fixed app namespace.
func TestConfigDirNamespaceSuffix(t *testing.T) {
	suffix := filepath.Join(AppNamespace, AppDir)

	win, err := windowsConfigDir(`C:\Users\test\AppData\Roaming`)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(win, suffix), "windows: %s", win)

	mac := darwinConfigDir("/Users/test")
	assert.True(t, strings.HasSuffix(mac, suffix), "darwin: %s", mac)
	assert.Contains(t, mac, "Library/Application Support")

	linux := xdgConfigDir()
	assert.True(t, strings.HasSuffix(linux, suffix), "xdg: %s", linux)
}

func TestWindowsConfigDirRequiresAppData(t *testing.T) {
	_, err := windowsConfigDir("")
	assert.ErrorIs(t, err, errNoAppData)
}

func TestXDGConfigDirHonorsEnv(t *testing.T) {
	tempHome := t.TempDir()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tempHome, ".config"))
	xdg.Reload()

	assert.Equal(t, filepath.Join(tempHome, ".config", AppNamespace, AppDir), xdgConfigDir())
}

func TestUnderShape(t *testing.T) {
	l := Under("/base")

	assert.Equal(t, "/base", l.Base)
	assert.Equal(t, "/base/data/au-archive.db", l.DB)
	assert.Equal(t, "/base/config.json", l.Config)
	assert.Equal(t, "/base/data", l.DataDir)
	assert.Equal(t, "/base/backups", l.Backups)
	assert.Equal(t, "/base/data/au-archive.db-wal", l.Sidecar("-wal"))
	assert.Equal(t, "/base/data/au-archive.db-shm", l.Sidecar("-shm"))
}

func TestDetectDev(t *testing.T) {
	cwd := t.TempDir()

	_, ok := DetectDev(cwd)
	assert.False(t, ok, "no checkout layout present")

	devBase := filepath.Join(cwd, "packages", "desktop", "data")
	require.NoError(t, os.MkdirAll(devBase, 0o755))

	l, ok := DetectDev(cwd)
	require.True(t, ok)
	assert.Equal(t, devBase, l.Base)
	assert.Equal(t, filepath.Join(devBase, DataDirName, DBFileName), l.DB)
}

func TestDetectDevIgnoresFile(t *testing.T) {
	cwd := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(cwd, "packages", "desktop"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cwd, "packages", "desktop", "data"), []byte("not a dir"), 0o644))

	_, ok := DetectDev(cwd)
	assert.False(t, ok)
}

func TestArchiveUnder(t *testing.T) {
	a := ArchiveUnder("/mnt/archive")

	assert.Equal(t, "/mnt/archive/.thumbnails", a.Thumbnails)
	assert.Equal(t, "/mnt/archive/.previews", a.Previews)
	assert.Equal(t, "/mnt/archive/.posters", a.Posters)
}

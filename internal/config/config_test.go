package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "targets.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadValid(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
extra_targets:
  - path: /tmp/fixtures/cache
    kind: dir
    label: Fixture cache
  - path: /tmp/fixtures/stray.db
`))
	require.NoError(t, err)
	require.Len(t, cfg.ExtraTargets, 2)

	assert.Equal(t, "/tmp/fixtures/cache", cfg.ExtraTargets[0].Path)
	assert.Equal(t, KindDir, cfg.ExtraTargets[0].Kind)
	assert.Equal(t, "Fixture cache", cfg.ExtraTargets[0].Label)

	// kind and label default per target
	assert.Equal(t, KindFile, cfg.ExtraTargets[1].Kind)
	assert.Equal(t, "stray.db", cfg.ExtraTargets[1].Label)
}

func TestLoadRejectsRelativePath(t *testing.T) {
	_, err := Load(writeConfig(t, "extra_targets:\n  - path: relative/thing\n"))
	assert.ErrorIs(t, err, errRelativePath)
}

func TestLoadRejectsUnknownKind(t *testing.T) {
	_, err := Load(writeConfig(t, "extra_targets:\n  - path: /tmp/x\n    kind: socket\n"))
	assert.ErrorIs(t, err, errUnknownKind)
}

func TestLoadRejectsEmpty(t *testing.T) {
	_, err := Load(writeConfig(t, "extra_targets: []\n"))
	assert.ErrorIs(t, err, errNoTargets)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

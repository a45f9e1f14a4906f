// Package paths resolves the filesystem locations au-reset operates on.
// The AU Archive desktop app stores its state under a platform-specific
// config directory; a project checkout carries a parallel dev layout.
package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
)

const (
	// AppNamespace is the fixed application folder the desktop app nests
	// its state under, on every platform.
	AppNamespace = "@au-archive"

	// AppDir is the per-product subdirectory inside the namespace.
	AppDir = "desktop"

	// DBFileName is the SQLite database file name.
	DBFileName = "au-archive.db"

	// ConfigFileName is the bootstrap config file name.
	ConfigFileName = "config.json"

	// DataDirName holds the database and its journal sidecars.
	DataDirName = "data"

	// BackupsDirName holds app-written backup snapshots.
	BackupsDirName = "backups"

	// Cache directories the app maintains inside a user's archive root.
	ThumbnailsDirName = ".thumbnails"
	PreviewsDirName   = ".previews"
	PostersDirName    = ".posters"
)

// SidecarSuffixes are the SQLite journal suffixes that must be removed
// together with the database file to avoid orphaned state.
var SidecarSuffixes = []string{"-wal", "-shm"}

var errNoAppData = errors.New("APPDATA is not set")

// Locations is the set of removable state paths under one base directory.
type Locations struct {
	Base    string // <base>
	DB      string // <base>/data/au-archive.db
	Config  string // <base>/config.json
	DataDir string // <base>/data
	Backups string // <base>/backups
}

// Sidecar returns the journal sidecar path for the given suffix.
func (l Locations) Sidecar(suffix string) string {
	return l.DB + suffix
}

// ArchiveDirs are the cache directories under a user-supplied archive root.
type ArchiveDirs struct {
	Thumbnails string
	Previews   string
	Posters    string
}

// ConfigDir returns the platform base directory for the installed app.
func ConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		return windowsConfigDir(os.Getenv("APPDATA"))
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		return darwinConfigDir(home), nil
	default:
		return xdgConfigDir(), nil
	}
}

// windowsConfigDir joins the roaming app-data root. The desktop app uses
// roaming, not local, app data on Windows.
func windowsConfigDir(appData string) (string, error) {
	if appData == "" {
		return "", errNoAppData
	}
	return filepath.Join(appData, AppNamespace, AppDir), nil
}

func darwinConfigDir(home string) string {
	return filepath.Join(home, "Library", "Application Support", AppNamespace, AppDir)
}

func xdgConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppNamespace, AppDir)
}

// Resolve returns the locations of the installed app's state.
func Resolve() (Locations, error) {
	base, err := ConfigDir()
	if err != nil {
		return Locations{}, err
	}
	return Under(base), nil
}

// Under derives the standard state layout beneath a base directory.
func Under(base string) Locations {
	return Locations{
		Base:    base,
		DB:      filepath.Join(base, DataDirName, DBFileName),
		Config:  filepath.Join(base, ConfigFileName),
		DataDir: filepath.Join(base, DataDirName),
		Backups: filepath.Join(base, BackupsDirName),
	}
}

// DetectDev reports the dev-mode state locations when dir is inside a
// project checkout (it contains packages/desktop/data). Returns ok=false
// when no checkout layout is present.
func DetectDev(dir string) (Locations, bool) {
	base := filepath.Join(dir, "packages", "desktop", "data")
	info, err := os.Stat(base)
	if err != nil || !info.IsDir() {
		return Locations{}, false
	}
	return Under(base), true
}

// ArchiveUnder derives the app's cache directories under an archive root.
func ArchiveUnder(root string) ArchiveDirs {
	return ArchiveDirs{
		Thumbnails: filepath.Join(root, ThumbnailsDirName),
		Previews:   filepath.Join(root, PreviewsDirName),
		Posters:    filepath.Join(root, PostersDirName),
	}
}

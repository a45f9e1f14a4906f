// Package reset implements the reset engine: it presents the removal
// plan, gates it behind confirmation, and executes guarded deletions.
// Every target is independent; a failure is reported and the run moves
// on to the next target.
package reset

import (
	"bufio"
	"io"
	"os"
	"strings"

	"au-reset/internal/fsops"
	"au-reset/internal/paths"
	"au-reset/internal/safety"
	"au-reset/internal/ui"
)

const (
	KindFile = "file"
	KindDir  = "dir"
)

// Target is one extra path slated for removal, beyond the standard app
// layout.
type Target struct {
	Path  string
	Kind  string
	Label string
}

// Summary counts per-target outcomes for one run.
type Summary struct {
	Removed int
	Missing int
	Failed  int
}

type outcome int

const (
	outcomeRemoved outcome = iota
	outcomeMissing
	outcomeFailed
	outcomeKept
)

func (s *Summary) add(o outcome) {
	switch o {
	case outcomeRemoved:
		s.Removed++
	case outcomeMissing:
		s.Missing++
	case outcomeFailed:
		s.Failed++
	}
}

// Resetter executes one reset run.
type Resetter struct {
	rep       *ui.Reporter
	input     io.Reader
	deleter   fsops.Deleter
	validator *safety.Validator
	force     bool
	dryRun    bool
}

func New(rep *ui.Reporter, input io.Reader, force, dryRun bool) *Resetter {
	return &Resetter{
		rep:     rep,
		input:   input,
		deleter: fsops.OSDeleter{},
		force:   force,
		dryRun:  dryRun,
	}
}

// SetDeleter overrides the filesystem deleter, used by tests
func (r *Resetter) SetDeleter(d fsops.Deleter) {
	r.deleter = d
}

// SetValidator restricts removals to the validator's allowed roots
func (r *Resetter) SetValidator(v *safety.Validator) {
	r.validator = v
}

// FullReset removes the app's database, config, data and backups
// directories, plus dev-mode equivalents, archive cache directories and
// extra targets when present.
func (r *Resetter) FullReset(primary paths.Locations, dev *paths.Locations, archive *paths.ArchiveDirs, extra []Target) Summary {
	r.rep.Header("AU Archive Reset")
	r.rep.Section("The following will be removed:")
	r.planLocations(primary, false)
	if dev != nil {
		r.planLocations(*dev, true)
	}
	if archive != nil {
		r.rep.Plan("Thumbnails directory", archive.Thumbnails)
		r.rep.Plan("Previews directory", archive.Previews)
		r.rep.Plan("Posters directory", archive.Posters)
	}
	for _, t := range extra {
		r.rep.Plan(t.Label, t.Path)
	}

	if !r.confirm("Are you sure you want to proceed?") {
		r.rep.Aborted()
		return Summary{}
	}

	var sum Summary
	r.rep.Section("Removing files...")
	r.resetLocations(primary, false, &sum)

	if dev != nil {
		r.rep.Section("Removing development files...")
		r.resetLocations(*dev, true, &sum)
	}

	if archive != nil {
		r.rep.Section("Removing archive support files...")
		sum.add(r.removeDir("Thumbnails directory", archive.Thumbnails))
		sum.add(r.removeDir("Previews directory", archive.Previews))
		sum.add(r.removeDir("Posters directory", archive.Posters))
	}

	if len(extra) > 0 {
		r.rep.Section("Removing extra targets...")
		for _, t := range extra {
			if t.Kind == KindDir {
				sum.add(r.removeDir(t.Label, t.Path))
			} else {
				sum.add(r.removeFile(t.Label, t.Path))
			}
		}
	}

	r.finish(sum)
	return sum
}

// DBOnly removes only the database file and its journal sidecars,
// primary and dev. Config, backups and archive caches stay untouched.
func (r *Resetter) DBOnly(primary paths.Locations, dev *paths.Locations) Summary {
	r.rep.Header("AU Archive Reset (DB Only)")
	r.rep.Section("The following will be removed:")
	r.rep.Plan("Database", primary.DB)
	if dev != nil {
		r.rep.Plan(devLabel("Database", true), dev.DB)
	}

	if !r.confirm("Are you sure?") {
		r.rep.Aborted()
		return Summary{}
	}

	var sum Summary
	r.rep.Section("Removing database...")
	r.removeDBFiles(primary, false, &sum)
	if dev != nil {
		r.removeDBFiles(*dev, true, &sum)
	}

	r.finish(sum)
	return sum
}

func (r *Resetter) planLocations(l paths.Locations, dev bool) {
	r.rep.Plan(devLabel("Database", dev), l.DB)
	r.rep.Plan(devLabel("Config", dev), l.Config)
	r.rep.Plan(devLabel("Data directory", dev), l.DataDir)
	r.rep.Plan(devLabel("Backups directory", dev), l.Backups)
}

// resetLocations runs the full removal order for one layout: database,
// config, journal sidecars, data directory (only if empty), backups.
func (r *Resetter) resetLocations(l paths.Locations, dev bool, sum *Summary) {
	sum.add(r.removeFile(devLabel("Database", dev), l.DB))
	sum.add(r.removeFile(devLabel("Config", dev), l.Config))
	for _, suffix := range paths.SidecarSuffixes {
		sum.add(r.removeFile(devLabel("Database "+suffix+" file", dev), l.Sidecar(suffix)))
	}
	sum.add(r.removeDataDir(devLabel("Data directory", dev), l.DataDir))
	sum.add(r.removeDir(devLabel("Backups directory", dev), l.Backups))
}

func (r *Resetter) removeDBFiles(l paths.Locations, dev bool, sum *Summary) {
	sum.add(r.removeFile(devLabel("Database", dev), l.DB))
	for _, suffix := range paths.SidecarSuffixes {
		sum.add(r.removeFile(devLabel("Database "+suffix+" file", dev), l.Sidecar(suffix)))
	}
}

func (r *Resetter) removeFile(label, path string) outcome {
	return r.remove(label, path, r.deleter.Remove)
}

func (r *Resetter) removeDir(label, path string) outcome {
	return r.remove(label, path, r.deleter.RemoveAll)
}

// remove deletes path if present. Absence and failures are both
// terminal states for a target; neither aborts the run.
func (r *Resetter) remove(label, path string, del func(string) error) outcome {
	if _, err := os.Lstat(path); err != nil {
		if os.IsNotExist(err) {
			r.rep.NotFound(label, path)
			return outcomeMissing
		}
		r.rep.Failed(label, path, err)
		return outcomeFailed
	}
	if err := r.validate(path); err != nil {
		r.rep.Failed(label, path, err)
		return outcomeFailed
	}
	if r.dryRun {
		r.rep.WouldRemove(label, path)
		return outcomeRemoved
	}
	if err := del(path); err != nil {
		r.rep.Failed(label, path, err)
		return outcomeFailed
	}
	r.rep.Removed(label, path)
	return outcomeRemoved
}

// removeDataDir removes the data directory only when the database and
// its sidecars were its sole contents; anything else the app left
// behind keeps the directory in place.
func (r *Resetter) removeDataDir(label, path string) outcome {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			r.rep.NotFound(label, path)
			return outcomeMissing
		}
		r.rep.Failed(label, path, err)
		return outcomeFailed
	}
	if r.dryRun {
		r.rep.WouldRemove(label+" (if empty)", path)
		return outcomeRemoved
	}
	if len(entries) > 0 {
		r.rep.Kept(label, path)
		return outcomeKept
	}
	if err := r.validate(path); err != nil {
		r.rep.Failed(label, path, err)
		return outcomeFailed
	}
	if err := r.deleter.Remove(path); err != nil {
		r.rep.Failed(label, path, err)
		return outcomeFailed
	}
	r.rep.Removed(label, path)
	return outcomeRemoved
}

func (r *Resetter) validate(path string) error {
	if r.validator == nil {
		return nil
	}
	return r.validator.ValidateDeleteTarget(path)
}

// confirm blocks on the prompt unless the run is forced or a dry run.
// Only an explicit yes proceeds; empty input and EOF both abort.
func (r *Resetter) confirm(question string) bool {
	if r.force || r.dryRun {
		return true
	}
	r.rep.Prompt(question)
	sc := bufio.NewScanner(r.input)
	if !sc.Scan() {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(sc.Text())) {
	case "y", "yes":
		return true
	}
	return false
}

func (r *Resetter) finish(sum Summary) {
	if r.dryRun {
		r.rep.DryRunDone(sum.Removed, sum.Missing)
		return
	}
	r.rep.Done(sum.Removed, sum.Missing, sum.Failed)
}

func devLabel(name string, dev bool) string {
	if !dev {
		return name
	}
	return "Dev " + strings.ToLower(name[:1]) + name[1:]
}

package ui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReporterPlainOutput(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, false)

	r.Removed("Database", "/x/data/au-archive.db")
	r.NotFound("Config", "/x/config.json")
	r.Failed("Backups directory", "/x/backups", errors.New("device busy"))
	r.Kept("Data directory", "/x/data")

	out := buf.String()
	assert.Contains(t, out, "✓ Removed Database: /x/data/au-archive.db")
	assert.Contains(t, out, "- Config not found: /x/config.json")
	assert.Contains(t, out, "✗ Failed to remove Backups directory: device busy")
	assert.Contains(t, out, "- Data directory kept (not empty): /x/data")
	assert.NotContains(t, out, "\x1b[", "no ANSI escapes with color disabled")
}

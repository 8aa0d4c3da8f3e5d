// Package export turns a settled result into something that can leave the
// terminal: a text copy on the clipboard, or a PNG file when the clipboard
// is not reachable.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/jask/karmator/internal/shuffle"
)

// Fallback file names, one per result layout.
const (
	TeamsFilename   = "karmator-sonuc.png"
	OrderedFilename = "altin-gunu-sonuc.png"
)

// ErrEmpty is returned for snapshots with nothing to show.
var ErrEmpty = errors.New("export: empty result")

// Snapshot is a settled result ready for export. Exactly one of Teams or
// Order is set.
type Snapshot struct {
	Title    string
	TeamA    string
	TeamB    string
	Teams    *shuffle.Teams
	Order    []string
	Filename string
}

// TeamsSnapshot builds a two-column snapshot.
func TeamsSnapshot(title string, teams shuffle.Teams) Snapshot {
	return Snapshot{Title: title, TeamA: "Takım A", TeamB: "Takım B", Teams: &teams, Filename: TeamsFilename}
}

// OrderedSnapshot builds a numbered-list snapshot.
func OrderedSnapshot(title string, order []string) Snapshot {
	return Snapshot{Title: title, Order: order, Filename: OrderedFilename}
}

func (s Snapshot) empty() bool {
	if s.Teams != nil {
		return s.Teams.Len() == 0
	}
	return len(s.Order) == 0
}

// Text renders the snapshot as aligned plain text.
func Text(s Snapshot) string {
	var b strings.Builder
	if s.Title != "" {
		b.WriteString(s.Title)
		b.WriteString("\n\n")
	}
	if s.Teams != nil {
		width := runewidth.StringWidth(s.TeamA)
		for _, n := range s.Teams.A {
			width = max(width, runewidth.StringWidth(n))
		}
		width += 4
		b.WriteString(runewidth.FillRight(s.TeamA, width) + s.TeamB + "\n")
		for i := range s.Teams.A {
			b.WriteString(runewidth.FillRight(s.Teams.A[i], width) + s.Teams.B[i] + "\n")
		}
		return b.String()
	}
	numWidth := len(strconv.Itoa(len(s.Order))) + 1
	for i, n := range s.Order {
		b.WriteString(runewidth.FillLeft(strconv.Itoa(i+1)+".", numWidth) + " " + n + "\n")
	}
	return b.String()
}

// Clipboard accepts text for the system clipboard.
type Clipboard interface {
	WriteText(text string) error
}

// Outcome reports where an export ended up.
type Outcome struct {
	Copied    bool
	SavedPath string
}

// Exporter copies results to the clipboard and falls back to saving a PNG.
type Exporter struct {
	Clipboard   Clipboard
	DownloadDir string
	Log         *slog.Logger
}

func (e *Exporter) logger() *slog.Logger {
	if e.Log != nil {
		return e.Log
	}
	return slog.Default()
}

// Export renders s, tries the clipboard and otherwise writes the image to
// the download directory. Render failures abandon the export.
func (e *Exporter) Export(ctx context.Context, s Snapshot) (Outcome, error) {
	log := e.logger()
	if s.empty() {
		return Outcome{}, ErrEmpty
	}
	var img bytes.Buffer
	if err := EncodePNG(&img, s); err != nil {
		log.Error("export render failed", "err", err)
		return Outcome{}, fmt.Errorf("render: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}

	if e.Clipboard != nil {
		err := e.Clipboard.WriteText(Text(s))
		if err == nil {
			log.Info("export copied to clipboard", "bytes", img.Len())
			return Outcome{Copied: true}, nil
		}
		log.Warn("clipboard failed, saving file instead", "err", err)
	}

	path, err := e.save(s.Filename, img.Bytes())
	if err != nil {
		log.Error("export save failed", "err", err)
		return Outcome{}, err
	}
	log.Info("export saved", "path", path)
	return Outcome{SavedPath: path}, nil
}

func (e *Exporter) save(name string, data []byte) (string, error) {
	dir := e.DownloadDir
	if dir == "" {
		dir = "."
	}
	if name == "" {
		name = TeamsFilename
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir download dir: %w", err)
	}
	path := filepath.Join(dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", fmt.Errorf("rename %s: %w", path, err)
	}
	return path, nil
}

// CLAUDE:SUMMARY Builds a lexicon pack (data.csv + data.gob + manifest.yaml) from a downloaded CSV word list.
package importer

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/hazyhaar/voicenorm/pkg/lexicon"
)

// Importer downloads word lists and writes them as lexicon packs.
type Importer struct {
	client *http.Client
	logger *slog.Logger
}

// New returns an Importer. A nil client uses a 10 minute timeout.
func New(client *http.Client, logger *slog.Logger) *Importer {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Minute}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{client: client, logger: logger}
}

// Import fetches src.URL (plain CSV or a ZIP holding one) and writes the pack
// into outputDir/<PackID>/. The CSV is parsed before anything is kept, so a
// malformed list leaves no pack behind.
func (im *Importer) Import(ctx context.Context, src Source, outputDir string) (*lexicon.Manifest, error) {
	packID := src.PackID
	if packID == "" {
		packID = src.ID
	}
	dir := filepath.Join(outputDir, packID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create pack dir: %w", err)
	}

	tmp := filepath.Join(dir, "download.tmp")
	defer os.Remove(tmp)
	if err := downloadFile(ctx, im.client, src.URL, tmp); err != nil {
		return nil, err
	}

	csvPath := filepath.Join(dir, "data.csv")
	zipped, err := isZip(tmp)
	if err != nil {
		return nil, fmt.Errorf("inspect download: %w", err)
	}
	if zipped {
		err = extractCSV(tmp, csvPath)
	} else {
		err = os.Rename(tmp, csvPath)
	}
	if err != nil {
		return nil, err
	}

	entries, err := readEntries(csvPath, src.Format)
	if err != nil {
		os.Remove(csvPath)
		return nil, fmt.Errorf("import %s: %w", src.ID, err)
	}
	if len(entries) == 0 {
		os.Remove(csvPath)
		return nil, fmt.Errorf("import %s: no entries", src.ID)
	}

	if err := lexicon.SaveGob(entries, filepath.Join(dir, "data.gob")); err != nil {
		return nil, err
	}
	m := &lexicon.Manifest{
		ID:          packID,
		Version:     time.Now().UTC().Format("2006-01-02"),
		Language:    src.Language,
		Description: src.Description,
		Source:      src.ID,
		SourceURL:   src.URL,
		License:     src.License,
		DataFile:    "data.csv",
		Format:      src.Format,
	}
	if err := lexicon.WriteManifest(filepath.Join(dir, "manifest.yaml"), m); err != nil {
		return nil, err
	}

	im.logger.Info("pack imported", "source", src.ID, "pack", packID, "entries", len(entries))
	return m, nil
}

func readEntries(path string, spec lexicon.FormatSpec) ([]lexicon.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return lexicon.ReadCSV(f, spec)
}

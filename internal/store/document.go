package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gongmyung/app-showcase/internal/logger"
)

// jsonDocument is one JSON-array collection file under the data directory.
// Every operation holds the mutex across the whole read-modify-write, so
// concurrent writers never lose updates to each other.
type jsonDocument struct {
	path   string
	logger *logger.Logger

	mu sync.Mutex
}

func newJSONDocument(path string, log *logger.Logger) *jsonDocument {
	return &jsonDocument{path: path, logger: log}
}

// ensure creates the containing directory and an empty-array document if
// either is missing yet.
func (d *jsonDocument) ensure() error {
	dir := filepath.Dir(d.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir %s: %w", dir, err)
	}

	if _, err := os.Stat(d.path); os.IsNotExist(err) {
		if err := os.WriteFile(d.path, []byte("[]"), 0o644); err != nil {
			return fmt.Errorf("initialize document %s: %w", d.path, err)
		}
	}

	return nil
}

// load reads the whole document into out. Read and parse failures degrade to
// an empty collection: they are logged, not raised, so a transient read
// failure looks the same as "no data yet". Write failures do propagate, see
// save.
func (d *jsonDocument) load(out any) {
	if err := d.ensure(); err != nil {
		d.logger.Err(err).Str("path", d.path).Msg("document init failed, treating as empty")
		return
	}

	data, err := os.ReadFile(d.path)
	if err != nil {
		d.logger.Err(err).Str("path", d.path).Msg("document read failed, treating as empty")
		return
	}

	if err = json.Unmarshal(data, out); err != nil {
		d.logger.Err(err).Str("path", d.path).Msg("document parse failed, treating as empty")
	}
}

// save rewrites the entire document.
func (d *jsonDocument) save(in any) error {
	if err := d.ensure(); err != nil {
		return fmt.Errorf("%w: %v", ErrDocumentNotSaved, err)
	}

	payload, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrDocumentNotSaved, err)
	}

	if err = os.WriteFile(d.path, payload, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrDocumentNotSaved, err)
	}

	return nil
}

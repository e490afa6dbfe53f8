// Package pdftext reads positioned text runs out of PDF files. It is a thin
// adapter over the ledongthuc/pdf library: each page's raw text objects are
// returned with their coordinates so the layout package can rebuild lines and
// columns.
package pdftext

import (
	"fmt"
	"strings"

	"finledger/statement-parser/internal/logging"
	"finledger/statement-parser/internal/models"

	"github.com/ledongthuc/pdf"
)

// DefaultMaxPages caps how many pages are read from a single document.
// Statements rarely run past a few dozen pages; the cap keeps a corrupt page
// tree from turning into an unbounded walk.
const DefaultMaxPages = 100

// Reader extracts positioned text from PDF files.
type Reader struct {
	maxPages int
	logger   logging.Logger
}

// NewReader creates a Reader. maxPages <= 0 selects DefaultMaxPages.
func NewReader(maxPages int, logger logging.Logger) *Reader {
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	return &Reader{maxPages: maxPages, logger: logger}
}

// ExtractPages reads the file and returns one Page of positioned runs per PDF
// page. The PDF library panics on some malformed documents, so the walk runs
// under a recover and reports those as errors instead.
func (r *Reader) ExtractPages(filePath string) (pages []models.Page, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("reading %s: PDF library crashed: %v", filePath, rec)
		}
	}()

	f, reader, err := pdf.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", filePath, err)
	}
	defer f.Close()

	numPages := reader.NumPage()
	if numPages == 0 {
		return nil, fmt.Errorf("%s has no pages", filePath)
	}
	if numPages > r.maxPages {
		r.logger.WithFields(
			logging.Field{Key: logging.FieldFile, Value: filePath},
			logging.Field{Key: logging.FieldCount, Value: numPages},
		).Warn("Document exceeds page cap, truncating")
		numPages = r.maxPages
	}

	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		content := page.Content()
		runs := make(models.Page, 0, len(content.Text))
		for _, text := range content.Text {
			if strings.TrimSpace(text.S) == "" {
				continue
			}
			runs = append(runs, models.PositionedRun{
				Text: text.S,
				X:    text.X,
				Y:    text.Y,
			})
		}
		if len(runs) > 0 {
			pages = append(pages, runs)
		}
	}

	r.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldPage, Value: len(pages)},
	).Debug("Extracted positioned text")
	return pages, nil
}

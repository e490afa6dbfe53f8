// Package layout reconstructs line-oriented text from the positioned glyph
// runs produced by a PDF decoder. Statement parsing is regex-driven and
// depends on stable reading order, so the reconstruction is a pure transform:
// the same pages always produce the same text.
package layout

import (
	"math"
	"sort"
	"strings"

	"finledger/statement-parser/internal/models"
)

const (
	// lineTolerance groups runs whose vertical coordinates differ by no more
	// than one layout unit onto the same line.
	lineTolerance = 1.0

	// columnGap is the horizontal gap, in layout units, beyond which two
	// consecutive runs belong to different columns. The inserted double space
	// keeps description and amount columns apart for the extractor patterns.
	columnGap = 10.0

	// charWidth approximates a glyph's advance in layout units, used to
	// estimate where a run ends since decoders only report its origin.
	charWidth = 5.0

	// PageBreak separates pages in the reconstructed text.
	PageBreak = "\f"
)

// Reconstruct converts decoder pages into a single string in reading order:
// lines top-to-bottom (PDF y-coordinates grow upward, so descending y),
// runs within a line left-to-right.
func Reconstruct(pages []models.Page) string {
	var parts []string
	for _, page := range pages {
		parts = append(parts, reconstructPage(page))
	}
	return strings.Join(parts, PageBreak+"\n")
}

type textLine struct {
	y    float64
	runs []models.PositionedRun
}

func reconstructPage(page models.Page) string {
	var lines []*textLine

	for _, run := range page {
		if strings.TrimSpace(run.Text) == "" {
			continue
		}
		line := findLine(lines, run.Y)
		if line == nil {
			line = &textLine{y: run.Y}
			lines = append(lines, line)
		}
		line.runs = append(line.runs, run)
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].y > lines[j].y
	})

	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(renderLine(line))
	}
	return sb.String()
}

func findLine(lines []*textLine, y float64) *textLine {
	for _, line := range lines {
		if math.Abs(line.y-y) <= lineTolerance {
			return line
		}
	}
	return nil
}

func renderLine(line *textLine) string {
	runs := make([]models.PositionedRun, len(line.runs))
	copy(runs, line.runs)
	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].X < runs[j].X
	})

	var sb strings.Builder
	var prevEnd float64
	for i, run := range runs {
		if i > 0 {
			if run.X-prevEnd > columnGap {
				sb.WriteString("  ")
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(run.Text)
		prevEnd = run.X + float64(len(run.Text))*charWidth
	}
	return sb.String()
}

package pdf

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/syncho-labs/Doct-Redaction-FastApp/internal/logger"
	"github.com/syncho-labs/Doct-Redaction-FastApp/internal/model/webrequest"
)

// box is an opaque rectangle in PDF user space (origin bottom-left).
type box struct {
	llx, lly, urx, ury float64
}

// Redact draws opaque black rectangles over the given regions and writes
// the resulting document to out. Coordinates arrive with a top-left origin
// and are flipped into PDF user space per page. Returns the number of
// rectangles actually applied.
func Redact(rs io.ReadSeeker, out io.Writer, coords []webrequest.RedactionCoordinate) (int, error) {
	conf := model.NewDefaultConfiguration()

	dims, err := api.PageDims(rs, conf)
	if err != nil {
		return 0, fmt.Errorf("reading page dimensions: %w", err)
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}

	pages := groupBoxes(coords, dims)
	if len(pages) == 0 {
		if _, err := io.Copy(out, rs); err != nil {
			return 0, err
		}
		return 0, nil
	}

	spec, applied, err := contentSpec(pages)
	if err != nil {
		return 0, err
	}

	if err := api.Create(rs, bytes.NewReader(spec), out, conf); err != nil {
		return 0, fmt.Errorf("applying redactions: %w", err)
	}

	return applied, nil
}

// groupBoxes buckets coordinates by 1-based page number, flipping Y from a
// top-left origin into PDF user space. Regions referencing pages the
// document does not have, and regions covering more than half the page in
// either dimension, are dropped.
func groupBoxes(coords []webrequest.RedactionCoordinate, dims []types.Dim) map[int][]box {
	pages := make(map[int][]box)
	for _, coord := range coords {
		if coord.PageIndex < 0 || coord.PageIndex >= len(dims) {
			logger.AppLogger.Warn().
				Int("page_index", coord.PageIndex).
				Int("page_count", len(dims)).
				Msg("redaction region references a missing page, skipping")
			continue
		}
		dim := dims[coord.PageIndex]
		if coord.Width > dim.Width/2 || coord.Height > dim.Height/2 {
			logger.AppLogger.Warn().
				Int("page_index", coord.PageIndex).
				Float64("width", coord.Width).
				Float64("height", coord.Height).
				Msg("redaction region larger than half the page, skipping")
			continue
		}
		lly := dim.Height - coord.Y - coord.Height
		pageNr := coord.PageIndex + 1
		pages[pageNr] = append(pages[pageNr], box{
			llx: coord.X,
			lly: lly,
			urx: coord.X + coord.Width,
			ury: lly + coord.Height,
		})
	}
	return pages
}

// contentSpec builds a pdfcpu create-spec that paints filled black boxes
// on the listed pages of the source document.
func contentSpec(pages map[int][]box) ([]byte, int, error) {
	type specBox struct {
		Rect    []float64 `json:"rect"`
		FillCol string    `json:"fillCol"`
		Col     string    `json:"col"`
	}
	type specContent struct {
		Boxes []specBox `json:"boxes"`
	}
	type specPage struct {
		Content specContent `json:"content"`
	}

	applied := 0
	pageSpecs := make(map[string]specPage, len(pages))
	for pageNr, boxes := range pages {
		content := specContent{Boxes: make([]specBox, 0, len(boxes))}
		for _, b := range boxes {
			content.Boxes = append(content.Boxes, specBox{
				Rect:    []float64{b.llx, b.lly, b.urx, b.ury},
				FillCol: "#000000",
				Col:     "#000000",
			})
			applied++
		}
		pageSpecs[fmt.Sprintf("%d", pageNr)] = specPage{Content: content}
	}

	raw, err := json.Marshal(map[string]any{"pages": pageSpecs})
	if err != nil {
		return nil, 0, err
	}
	return raw, applied, nil
}

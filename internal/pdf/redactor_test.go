package pdf

import (
	"encoding/json"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/syncho-labs/Doct-Redaction-FastApp/internal/model/webrequest"
)

var letterPage = []types.Dim{{Width: 612, Height: 792}}

func TestGroupBoxesFlipsOrigin(t *testing.T) {
	pages := groupBoxes([]webrequest.RedactionCoordinate{
		{PageIndex: 0, X: 50, Y: 100, Width: 200, Height: 20},
	}, letterPage)

	boxes := pages[1]
	if len(boxes) != 1 {
		t.Fatalf("expected 1 box on page 1, got %d", len(boxes))
	}
	b := boxes[0]
	if b.llx != 50 || b.urx != 250 {
		t.Errorf("x span = [%v, %v], want [50, 250]", b.llx, b.urx)
	}
	// y=100 from the top of a 792pt page, 20pt tall: bottom edge at 672.
	if b.lly != 672 || b.ury != 692 {
		t.Errorf("y span = [%v, %v], want [672, 692]", b.lly, b.ury)
	}
}

func TestGroupBoxesSkipsMissingPages(t *testing.T) {
	pages := groupBoxes([]webrequest.RedactionCoordinate{
		{PageIndex: 3, X: 10, Y: 10, Width: 50, Height: 10},
		{PageIndex: -1, X: 10, Y: 10, Width: 50, Height: 10},
	}, letterPage)

	if len(pages) != 0 {
		t.Fatalf("expected no boxes for out-of-range pages, got %v", pages)
	}
}

func TestGroupBoxesSkipsOversizedRegions(t *testing.T) {
	pages := groupBoxes([]webrequest.RedactionCoordinate{
		{PageIndex: 0, X: 0, Y: 0, Width: 400, Height: 20},
		{PageIndex: 0, X: 0, Y: 0, Width: 100, Height: 500},
		{PageIndex: 0, X: 0, Y: 0, Width: 100, Height: 20},
	}, letterPage)

	if len(pages[1]) != 1 {
		t.Fatalf("expected only the sane region to survive, got %d", len(pages[1]))
	}
}

func TestContentSpecShape(t *testing.T) {
	raw, applied, err := contentSpec(map[int][]box{
		1: {{llx: 10, lly: 20, urx: 110, ury: 40}},
		2: {{llx: 0, lly: 0, urx: 50, ury: 10}, {llx: 60, lly: 0, urx: 120, ury: 10}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if applied != 3 {
		t.Fatalf("applied = %d, want 3", applied)
	}

	var spec struct {
		Pages map[string]struct {
			Content struct {
				Boxes []struct {
					Rect    []float64 `json:"rect"`
					FillCol string    `json:"fillCol"`
				} `json:"boxes"`
			} `json:"content"`
		} `json:"pages"`
	}
	if err := json.Unmarshal(raw, &spec); err != nil {
		t.Fatalf("spec is not valid JSON: %v", err)
	}

	page1 := spec.Pages["1"]
	if len(page1.Content.Boxes) != 1 {
		t.Fatalf("page 1 boxes = %d, want 1", len(page1.Content.Boxes))
	}
	b := page1.Content.Boxes[0]
	if len(b.Rect) != 4 || b.Rect[0] != 10 || b.Rect[3] != 40 {
		t.Errorf("unexpected rect %v", b.Rect)
	}
	if b.FillCol != "#000000" {
		t.Errorf("fillCol = %q, want #000000", b.FillCol)
	}
	if len(spec.Pages["2"].Content.Boxes) != 2 {
		t.Errorf("page 2 boxes = %d, want 2", len(spec.Pages["2"].Content.Boxes))
	}
}

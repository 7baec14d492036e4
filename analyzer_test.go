package pagelens

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/tsawler/pagelens/model"
)

// fakeSource serves canned page data from memory.
type fakeSource struct {
	pages []*model.PageData
	errs  map[int]error
}

func (f *fakeSource) PageCount() int { return len(f.pages) }

func (f *fakeSource) Page(index int) (*model.PageData, error) {
	if err := f.errs[index]; err != nil {
		return nil, err
	}
	return f.pages[index], nil
}

// rawText builds a raw block holding one line with one span.
func rawText(x0, y0, x1, y1 float64, text string, size float64, bold bool) model.RawBlock {
	rect := model.NewRect(x0, y0, x1, y1)
	return model.RawBlock{
		Rect: rect,
		Lines: []model.RawLine{{
			Rect: rect,
			Spans: []model.Span{{
				Rect: rect,
				Text: text,
				Font: "Helvetica",
				Size: size,
				Bold: bold,
			}},
		}},
	}
}

// samplePage is a single page with a title, two body blocks, a header and
// footer, a visual box, and one small square image.
func samplePage() *model.PageData {
	return &model.PageData{
		Width:  612,
		Height: 792,
		Blocks: []model.RawBlock{
			rawText(400, 30, 540, 42, "Draft", 8, false),
			rawText(72, 60, 540, 90, "Quarterly Business Overview Report", 28, true),
			rawText(72, 150, 540, 162, "the quick brown fox jumps over the lazy dog while the sun sets slowly", 11, false),
			rawText(72, 164, 540, 176, "behind the hills and the evening light fades into a calm quiet dusk", 11, false),
			rawText(280, 750, 330, 762, "17", 9, false),
		},
		Drawings: []model.Drawing{{
			Kind: model.DrawingRect,
			Rect: model.NewRect(300, 300, 520, 500),
		}},
		Images: []model.ImageObject{{
			Rect: model.NewRect(40, 30, 80, 70),
		}},
	}
}

func TestRun_EndToEnd(t *testing.T) {
	source := &fakeSource{pages: []*model.PageData{samplePage()}}

	result, err := New(source).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Pages) != 1 {
		t.Fatalf("got %d pages, want 1", len(result.Pages))
	}

	page := result.Pages[0]
	if page.Width != 612 || page.Height != 792 {
		t.Errorf("page size %fx%f", page.Width, page.Height)
	}
	if len(page.Blocks) != 5 {
		t.Errorf("got %d blocks, want 5", len(page.Blocks))
	}

	if len(page.Zones) == 0 {
		t.Fatal("no zones")
	}
	var title *model.Zone
	for i := range page.Zones {
		if page.Zones[i].Type == model.ZoneTitle {
			title = &page.Zones[i]
		}
	}
	if title == nil {
		t.Error("no zone classified as a title")
	}

	if len(page.VisualBoxes) != 1 {
		t.Errorf("got %d visual boxes, want 1", len(page.VisualBoxes))
	}

	if len(page.Images) != 1 {
		t.Fatalf("got %d images, want 1", len(page.Images))
	}
	if page.Images[0].Role != model.RoleLogo {
		t.Errorf("image role = %s, want logo", page.Images[0].Role)
	}

	if page.Header == nil || page.Header.Text != "Draft" {
		t.Errorf("header = %+v", page.Header)
	}
	if page.Footer == nil || page.Footer.Text != "17" {
		t.Errorf("footer = %+v", page.Footer)
	}

	if page.DominantFontSize != 11 {
		t.Errorf("DominantFontSize = %f, want 11", page.DominantFontSize)
	}
	if len(page.Tables) != 0 {
		t.Errorf("single-span lines produced %d tables", len(page.Tables))
	}

	if result.Analysis == nil || result.Analysis.TotalPages != 1 {
		t.Errorf("analysis = %+v", result.Analysis)
	}
}

func TestRun_Progress(t *testing.T) {
	source := &fakeSource{pages: []*model.PageData{samplePage(), samplePage(), samplePage()}}

	type call struct{ done, total int }
	var calls []call

	_, err := New(source).
		OnProgress(func(done, total int) { calls = append(calls, call{done, total}) }).
		Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []call{{1, 3}, {2, 3}, {3, 3}}
	if !reflect.DeepEqual(calls, want) {
		t.Errorf("progress calls = %v, want %v", calls, want)
	}
}

func TestRun_Cancellation(t *testing.T) {
	source := &fakeSource{pages: []*model.PageData{samplePage(), samplePage()}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := New(source).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if result != nil {
		t.Error("canceled run returned a result")
	}
}

func TestRun_CancellationBetweenPages(t *testing.T) {
	source := &fakeSource{pages: []*model.PageData{samplePage(), samplePage(), samplePage()}}

	ctx, cancel := context.WithCancel(context.Background())
	pagesDone := 0

	_, err := New(source).
		OnProgress(func(done, total int) {
			pagesDone = done
			cancel()
		}).
		Run(ctx)

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if pagesDone != 1 {
		t.Errorf("completed %d pages before cancellation took effect, want 1", pagesDone)
	}
}

func TestRun_NilSource(t *testing.T) {
	if _, err := New(nil).Run(context.Background()); err == nil {
		t.Fatal("expected an error for a nil source")
	}
}

func TestRun_PageSelection(t *testing.T) {
	source := &fakeSource{pages: []*model.PageData{samplePage(), samplePage(), samplePage()}}

	result, err := New(source).Pages(2, 0, 5).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(result.Pages) != 2 {
		t.Fatalf("got %d pages, want 2", len(result.Pages))
	}
	if result.Pages[0].Index != 2 || result.Pages[1].Index != 0 {
		t.Errorf("page order = %d, %d; want 2, 0", result.Pages[0].Index, result.Pages[1].Index)
	}
}

func TestRun_PageErrorDegradesToPartialRecord(t *testing.T) {
	source := &fakeSource{
		pages: []*model.PageData{samplePage(), samplePage()},
		errs:  map[int]error{1: errors.New("stream damaged")},
	}

	result, err := New(source).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Pages) != 2 {
		t.Fatalf("got %d pages, want 2", len(result.Pages))
	}

	partial := result.Pages[1]
	if partial.Index != 1 {
		t.Errorf("partial record index = %d, want 1", partial.Index)
	}
	if len(partial.Blocks) != 0 || len(partial.Zones) != 0 {
		t.Errorf("failed page carries content: %+v", partial)
	}
}

func TestRun_SkipTables(t *testing.T) {
	// Three aligned three-span rows would normally trip the manual fallback.
	tablePage := &model.PageData{
		Width:  612,
		Height: 792,
		Blocks: []model.RawBlock{
			{Rect: model.NewRect(72, 100, 540, 110), Lines: []model.RawLine{{
				Rect: model.NewRect(72, 100, 540, 110),
				Spans: []model.Span{
					{Rect: model.NewRect(72, 100, 160, 110), Text: "Name", Size: 10},
					{Rect: model.NewRect(222, 100, 300, 110), Text: "Qty", Size: 10},
					{Rect: model.NewRect(372, 100, 440, 110), Text: "Price", Size: 10},
				},
			}}},
			{Rect: model.NewRect(72, 120, 540, 130), Lines: []model.RawLine{{
				Rect: model.NewRect(72, 120, 540, 130),
				Spans: []model.Span{
					{Rect: model.NewRect(72, 120, 160, 130), Text: "Bolt", Size: 10},
					{Rect: model.NewRect(222, 120, 300, 130), Text: "40", Size: 10},
					{Rect: model.NewRect(372, 120, 440, 130), Text: "0.10", Size: 10},
				},
			}}},
			{Rect: model.NewRect(72, 140, 540, 150), Lines: []model.RawLine{{
				Rect: model.NewRect(72, 140, 540, 150),
				Spans: []model.Span{
					{Rect: model.NewRect(72, 140, 160, 150), Text: "Nut", Size: 10},
					{Rect: model.NewRect(222, 140, 300, 150), Text: "90", Size: 10},
					{Rect: model.NewRect(372, 140, 440, 150), Text: "0.05", Size: 10},
				},
			}}},
		},
	}
	source := &fakeSource{pages: []*model.PageData{tablePage}}

	withTables, err := New(source).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(withTables.Pages[0].Tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(withTables.Pages[0].Tables))
	}

	skipped, err := New(source).SkipTables().Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(skipped.Pages[0].Tables) != 0 {
		t.Errorf("SkipTables still produced %d tables", len(skipped.Pages[0].Tables))
	}
}

func TestRun_SkipImages(t *testing.T) {
	source := &fakeSource{pages: []*model.PageData{samplePage()}}

	result, err := New(source).SkipImages().Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Pages[0].Images) != 0 {
		t.Errorf("SkipImages still produced %d images", len(result.Pages[0].Images))
	}
}

func TestAnalyzer_ChainIsImmutable(t *testing.T) {
	source := &fakeSource{pages: []*model.PageData{samplePage()}}

	base := New(source)
	derived := base.SkipTables().SkipImages().Pages(0)

	if base.options.skipTables || base.options.skipImages || base.options.pages != nil {
		t.Errorf("chain mutated the base analyzer: %+v", base.options)
	}
	if !derived.options.skipTables || !derived.options.skipImages {
		t.Errorf("derived analyzer lost its options: %+v", derived.options)
	}
}

func TestAnalyze_Convenience(t *testing.T) {
	source := &fakeSource{pages: []*model.PageData{samplePage()}}

	result, err := Analyze(context.Background(), source)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(result.Pages) != 1 {
		t.Errorf("got %d pages, want 1", len(result.Pages))
	}
}

func TestMust(t *testing.T) {
	if got := Must(42, nil); got != 42 {
		t.Errorf("Must = %d, want 42", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("Must did not panic on error")
		}
	}()
	Must(0, errors.New("boom"))
}

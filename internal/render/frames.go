// Package render turns occupancy grids into pixels: an ebiten painter for
// the interactive viewer and a Recorder that writes run artifacts for the
// headless batch runner.
package render

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strconv"

	"github.com/icza/mjpeg"
	"github.com/wcharczuk/go-chart/v2"

	"cellsim/internal/core"
)

// Recorder writes one upscaled PNG frame per iteration, assembles the frames
// into an MJPEG video, and on Close emits a population time-series chart and
// a CSV of per-tick statistics.
type Recorder struct {
	dir   string
	scale int
	video mjpeg.AviWriter

	ticks []float64
	pops  []float64
}

// NewRecorder prepares an output directory and opens the run video.
func NewRecorder(dir string, size core.Size, scale int, fps int32) (*Recorder, error) {
	if scale < 1 {
		scale = 1
	}
	if fps < 1 {
		fps = 10
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	video, err := mjpeg.New(filepath.Join(dir, "run.avi"),
		int32(size.W*scale), int32(size.H*scale), fps)
	if err != nil {
		return nil, fmt.Errorf("open run video: %w", err)
	}
	return &Recorder{dir: dir, scale: scale, video: video}, nil
}

// Frame records one completed iteration.
func (r *Recorder) Frame(grid *core.ByteGrid, clock, population int) error {
	img := occupancyImage(grid, r.scale)

	name := filepath.Join(r.dir, fmt.Sprintf("frame_%04d.png", clock))
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("create frame: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode frame: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return fmt.Errorf("encode video frame: %w", err)
	}
	if err := r.video.AddFrame(buf.Bytes()); err != nil {
		return fmt.Errorf("append video frame: %w", err)
	}

	r.ticks = append(r.ticks, float64(clock))
	r.pops = append(r.pops, float64(population))
	return nil
}

// Close finalizes the video and writes the summary artifacts.
func (r *Recorder) Close() error {
	err := r.video.Close()
	if csvErr := r.writeStats(); err == nil {
		err = csvErr
	}
	if chartErr := r.writeChart(); err == nil {
		err = chartErr
	}
	return err
}

func (r *Recorder) writeStats() error {
	f, err := os.Create(filepath.Join(r.dir, "stats.csv"))
	if err != nil {
		return fmt.Errorf("create stats: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"tick", "population"}); err != nil {
		return err
	}
	for i := range r.ticks {
		record := []string{
			strconv.Itoa(int(r.ticks[i])),
			strconv.Itoa(int(r.pops[i])),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func (r *Recorder) writeChart() error {
	// go-chart refuses series with fewer than two points.
	if len(r.ticks) < 2 {
		return nil
	}
	graph := chart.Chart{
		Title: "Population over time",
		XAxis: chart.XAxis{Name: "tick"},
		YAxis: chart.YAxis{Name: "live cells"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: r.ticks,
				YValues: r.pops,
				Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 2},
			},
		},
	}
	f, err := os.Create(filepath.Join(r.dir, "population.png"))
	if err != nil {
		return fmt.Errorf("create chart: %w", err)
	}
	defer f.Close()
	return graph.Render(chart.PNG, f)
}

// occupancyImage renders the grid with each coordinate as a scale x scale
// block.
func occupancyImage(grid *core.ByteGrid, scale int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, grid.W*scale, grid.H*scale))
	cells := grid.Cells()
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			col := Vacant
			if cells[grid.Index(x, y)] != 0 {
				col = Occupied
			}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetRGBA(x*scale+dx, y*scale+dy, col)
				}
			}
		}
	}
	return img
}

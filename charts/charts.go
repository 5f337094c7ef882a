// Package charts renders analysis results as PNG figures.
package charts

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/lehigh-university-libraries/scholarsim/analysis"
	"github.com/lehigh-university-libraries/scholarsim/dataset"
)

// RenderAll writes the full chart set for a table into dir, creating it
// as needed.
func RenderAll(t *dataset.Table, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating charts directory: %w", err)
	}

	figures := []struct {
		file   string
		render func(*dataset.Table, string) error
	}{
		{"citations_distribution.png", CitationsHistogram},
		{"researcher_productivity.png", ProductivityScatter},
		{"citations_vs_coauthors.png", CitationsVsCoauthors},
		{"publication_trend.png", PublicationTrend},
		{"journal_distribution.png", JournalBars},
	}

	for _, f := range figures {
		if err := f.render(t, filepath.Join(dir, f.file)); err != nil {
			return fmt.Errorf("rendering %s: %w", f.file, err)
		}
	}

	return nil
}

// CitationsHistogram plots the distribution of citation counts.
func CitationsHistogram(t *dataset.Table, path string) error {
	values := make(plotter.Values, 0, t.Len())
	for _, r := range t.Records {
		if r.Citations != nil {
			values = append(values, float64(*r.Citations))
		}
	}
	if len(values) == 0 {
		return fmt.Errorf("no citation values to plot")
	}

	p := plot.New()
	p.Title.Text = "Distribution of Citation Counts"
	p.X.Label.Text = "Number of Citations"
	p.Y.Label.Text = "Frequency"

	hist, err := plotter.NewHist(values, 50)
	if err != nil {
		return err
	}
	hist.FillColor = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	p.Add(hist)

	return p.Save(12*vg.Inch, 6*vg.Inch, path)
}

// ProductivityScatter plots papers against total citations per researcher.
func ProductivityScatter(t *dataset.Table, path string) error {
	metrics, err := analysis.ComputeBasicMetrics(t)
	if err != nil {
		return err
	}
	if len(metrics) == 0 {
		return fmt.Errorf("no researchers to plot")
	}

	points := make(plotter.XYs, len(metrics))
	for i, m := range metrics {
		points[i].X = float64(m.TotalPapers)
		points[i].Y = float64(m.TotalCitations)
	}

	p := plot.New()
	p.Title.Text = "Researcher Productivity: Papers vs Citations"
	p.X.Label.Text = "Number of Papers"
	p.Y.Label.Text = "Total Citations"

	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Color = color.RGBA{R: 255, G: 165, A: 255}
	p.Add(scatter)

	return p.Save(12*vg.Inch, 8*vg.Inch, path)
}

// CitationsVsCoauthors plots per-paper citations against co-author count,
// with the Pearson correlation in the title.
func CitationsVsCoauthors(t *dataset.Table, path string) error {
	points := make(plotter.XYs, 0, t.Len())
	xs := make([]float64, 0, t.Len())
	ys := make([]float64, 0, t.Len())
	for _, r := range t.Records {
		if r.Citations == nil {
			continue
		}
		points = append(points, plotter.XY{X: float64(r.CoAuthorsCount), Y: float64(*r.Citations)})
		xs = append(xs, float64(r.CoAuthorsCount))
		ys = append(ys, float64(*r.Citations))
	}
	if len(points) == 0 {
		return fmt.Errorf("no citation values to plot")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Citations vs Number of Co-Authors (r = %.2f)", stat.Correlation(xs, ys, nil))
	p.X.Label.Text = "Number of Co-Authors"
	p.Y.Label.Text = "Citations"

	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Color = color.RGBA{G: 128, A: 255}
	p.Add(scatter)

	return p.Save(12*vg.Inch, 6*vg.Inch, path)
}

// PublicationTrend plots the number of papers published per year.
func PublicationTrend(t *dataset.Table, path string) error {
	if t.Len() == 0 {
		return fmt.Errorf("no records to plot")
	}

	counts := make(map[int]int)
	for _, r := range t.Records {
		counts[r.Year]++
	}
	years := make([]int, 0, len(counts))
	for y := range counts {
		years = append(years, y)
	}
	sort.Ints(years)

	points := make(plotter.XYs, len(years))
	for i, y := range years {
		points[i].X = float64(y)
		points[i].Y = float64(counts[y])
	}

	p := plot.New()
	p.Title.Text = "Publications per Year"
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Papers"

	line, err := plotter.NewLine(points)
	if err != nil {
		return err
	}
	line.Color = color.RGBA{B: 180, A: 255}
	p.Add(line)

	return p.Save(12*vg.Inch, 6*vg.Inch, path)
}

// JournalBars plots the top-10 journals by publication count.
func JournalBars(t *dataset.Table, path string) error {
	if t.Len() == 0 {
		return fmt.Errorf("no records to plot")
	}

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, r := range t.Records {
		if _, seen := counts[r.Journal]; !seen {
			order = append(order, r.Journal)
		}
		counts[r.Journal]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > 10 {
		order = order[:10]
	}

	values := make(plotter.Values, len(order))
	for i, j := range order {
		values[i] = float64(counts[j])
	}

	p := plot.New()
	p.Title.Text = "Top Journals by Publication Count"
	p.Y.Label.Text = "Papers"

	bars, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return err
	}
	bars.Color = color.RGBA{R: 106, G: 90, B: 205, A: 255}
	p.Add(bars)
	p.NominalX(order...)
	p.X.Tick.Label.Rotation = 0.9
	p.X.Tick.Label.XAlign = -1
	p.X.Tick.Label.YAlign = -0.4

	return p.Save(14*vg.Inch, 7*vg.Inch, path)
}

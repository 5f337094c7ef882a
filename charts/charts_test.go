package charts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lehigh-university-libraries/scholarsim/dataset"
	"github.com/lehigh-university-libraries/scholarsim/synth"
)

func TestRenderAll(t *testing.T) {
	params := synth.DefaultParams()
	params.Researchers = 5
	table, err := synth.Generate(params)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	dir := filepath.Join(t.TempDir(), "plots")
	if err := RenderAll(table, dir); err != nil {
		t.Fatalf("RenderAll() error = %v", err)
	}

	for _, file := range []string{
		"citations_distribution.png",
		"researcher_productivity.png",
		"citations_vs_coauthors.png",
		"publication_trend.png",
		"journal_distribution.png",
	} {
		info, err := os.Stat(filepath.Join(dir, file))
		if err != nil {
			t.Errorf("missing chart %s: %v", file, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("chart %s is empty", file)
		}
	}
}

func TestRenderAllEmptyTable(t *testing.T) {
	table := dataset.NewTable(nil, dataset.Columns())
	if err := RenderAll(table, t.TempDir()); err == nil {
		t.Error("RenderAll() on empty table error = nil, want error")
	}
}

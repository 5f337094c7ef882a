package analysis

import "testing"

func TestHIndex(t *testing.T) {
	tests := []struct {
		name      string
		citations []int
		want      int
	}{
		{
			name:      "empty list",
			citations: []int{},
			want:      0,
		},
		{
			name:      "all zero citations",
			citations: []int{0, 0, 0},
			want:      0,
		},
		{
			name:      "single cited paper",
			citations: []int{10},
			want:      1,
		},
		{
			name:      "single uncited paper",
			citations: []int{0},
			want:      0,
		},
		{
			name:      "descending sequence",
			citations: []int{5, 4, 3, 2, 1},
			want:      3,
		},
		{
			name:      "order does not matter",
			citations: []int{1, 2, 3, 4, 5},
			want:      3,
		},
		{
			name:      "duplicate values",
			citations: []int{4, 4, 4, 4},
			want:      4,
		},
		{
			name:      "h bounded by paper count",
			citations: []int{100, 90},
			want:      2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HIndex(tt.citations)
			if got != tt.want {
				t.Errorf("HIndex(%v) = %d, want %d", tt.citations, got, tt.want)
			}
			if got > len(tt.citations) {
				t.Errorf("HIndex(%v) = %d exceeds paper count %d", tt.citations, got, len(tt.citations))
			}
			if len(tt.citations) > 0 {
				maxC := tt.citations[0]
				for _, c := range tt.citations {
					if c > maxC {
						maxC = c
					}
				}
				if got > maxC {
					t.Errorf("HIndex(%v) = %d exceeds max citations %d", tt.citations, got, maxC)
				}
			}
		})
	}
}

func TestHIndexDoesNotMutateInput(t *testing.T) {
	citations := []int{1, 5, 3, 2, 4}
	HIndex(citations)

	want := []int{1, 5, 3, 2, 4}
	for i := range want {
		if citations[i] != want[i] {
			t.Fatalf("input mutated: %v, want %v", citations, want)
		}
	}
}

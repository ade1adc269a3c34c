package layout

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}

func TestPartition(t *testing.T) {
	tests := []struct {
		name      string
		available int
		cells     []SizeSpec
		lo, hi    int
		spacing   int
		want      []int
	}{
		{
			name:      "single fill",
			available: 80,
			cells:     []SizeSpec{Fill()},
			want:      []int{0, 80, 0},
		},
		{
			name:      "percent rounding spreads error",
			available: 101,
			cells:     []SizeSpec{Percent(50), Percent(50)},
			want:      []int{0, 51, 0, 50, 0},
		},
		{
			name:      "equal proportional split",
			available: 100,
			cells:     []SizeSpec{Fill(), Fill()},
			want:      []int{0, 50, 0, 50, 0},
		},
		{
			name:      "thirds",
			available: 10,
			cells:     []SizeSpec{Fill(), Fill(), Fill()},
			want:      []int{0, 3, 0, 4, 0, 3, 0},
		},
		{
			name:      "weighted",
			available: 90,
			cells:     []SizeSpec{Proportional(2), Proportional(1)},
			want:      []int{0, 60, 0, 30, 0},
		},
		{
			name:      "mixed with margins and spacing",
			available: 100,
			cells:     []SizeSpec{Fixed(20), Fill(), Percent(30)},
			lo:        5, hi: 5,
			spacing:   2,
			want:      []int{5, 20, 2, 36, 2, 30, 5},
		},
		{
			name:      "exact fixed fit",
			available: 60,
			cells:     []SizeSpec{Fixed(30), Fixed(30)},
			want:      []int{0, 30, 0, 30, 0},
		},
		{
			name:      "zero available",
			available: 0,
			cells:     []SizeSpec{Fill(), Percent(50)},
			want:      []int{0, 0, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Partition(tt.available, tt.cells, tt.lo, tt.hi, tt.spacing)
			if err != nil {
				t.Fatalf("Partition: unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Partition mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPartition_SumsToAvailable(t *testing.T) {
	mixes := [][]SizeSpec{
		{Percent(33.3), Percent(33.3), Fill()},
		{Fill(), Fill(), Fill(), Fill(), Fill(), Fill(), Fill()},
		{Percent(12.5), Proportional(3), Fixed(7), Proportional(0.5), Percent(40)},
		{Proportional(1.7), Proportional(2.9), Fixed(1)},
		{Percent(1), Fill()},
	}
	for _, cells := range mixes {
		for available := 60; available <= 500; available += 7 {
			got, err := Partition(available, cells, 3, 2, 1)
			if err != nil {
				t.Fatalf("Partition(%d, %v): %v", available, cells, err)
			}
			if len(got) != 2*len(cells)+1 {
				t.Fatalf("Partition(%d, %v): got %d sizes, want %d", available, cells, len(got), 2*len(cells)+1)
			}
			if s := sum(got); s != available {
				t.Errorf("Partition(%d, %v) sums to %d", available, cells, s)
			}
			for i, px := range got {
				if px < 0 {
					t.Errorf("Partition(%d, %v)[%d] = %d, want >= 0", available, cells, i, px)
				}
			}
		}
	}
}

func TestPartition_ProportionalWithinOne(t *testing.T) {
	for available := 0; available <= 200; available++ {
		got, err := Partition(available, []SizeSpec{Fill(), Fill()}, 0, 0, 0)
		if err != nil {
			t.Fatalf("Partition(%d): %v", available, err)
		}
		d := got[1] - got[3]
		if d < -1 || d > 1 {
			t.Errorf("Partition(%d): cells %d and %d differ by more than 1", available, got[1], got[3])
		}
	}
}

func TestPartition_PercentTotalsMatchRoundedShare(t *testing.T) {
	cells := []SizeSpec{Percent(50), Percent(50)}
	for available := 0; available <= 300; available++ {
		got, err := Partition(available, cells, 0, 0, 0)
		if err != nil {
			t.Fatalf("Partition(%d): %v", available, err)
		}
		if got[1]+got[3] != available {
			t.Errorf("Partition(%d): percent cells sum to %d", available, got[1]+got[3])
		}
	}
}

func TestPartition_Errors(t *testing.T) {
	tests := []struct {
		name      string
		available int
		cells     []SizeSpec
		lo, hi    int
		spacing   int
		want      error
	}{
		{"fixed cells too wide", 50, []SizeSpec{Fixed(30), Fixed(30)}, 0, 0, 0, ErrOversized},
		{"margins too wide", 10, []SizeSpec{Fill()}, 6, 6, 0, ErrOversized},
		{"spacing too wide", 10, []SizeSpec{Fill(), Fill(), Fill()}, 0, 0, 6, ErrOversized},
		{"percent overflow", 100, []SizeSpec{Percent(80), Fixed(30)}, 0, 0, 0, ErrOversized},
		{"space left over", 100, []SizeSpec{Fixed(50)}, 0, 0, 0, ErrPartitionMismatch},
		{"zero weights", 100, []SizeSpec{Proportional(0)}, 0, 0, 0, ErrPartitionMismatch},
		{"negative margin", 100, []SizeSpec{Fill()}, -1, 0, 0, ErrNegativeInset},
		{"negative weight", 100, []SizeSpec{Proportional(-1), Proportional(2)}, 0, 0, 0, ErrInvalidSize},
		{"negative percent", 100, []SizeSpec{Percent(-10), Fill()}, 0, 0, 0, ErrInvalidSize},
		{"negative fixed", 100, []SizeSpec{Fixed(-3), Fill()}, 0, 0, 0, ErrInvalidSize},
		{"negative available", -5, []SizeSpec{Fill()}, 0, 0, 0, ErrNegativeInset},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Partition(tt.available, tt.cells, tt.lo, tt.hi, tt.spacing)
			if !errors.Is(err, tt.want) {
				t.Errorf("Partition error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestOffsets(t *testing.T) {
	tests := []struct {
		sizes []int
		want  []int
	}{
		{[]int{10, 20, 30}, []int{0, 10, 30}},
		{[]int{5}, []int{0}},
		{[]int{}, []int{}},
		{[]int{0, 0, 4, 0}, []int{0, 0, 0, 4}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, Offsets(tt.sizes)); diff != "" {
			t.Errorf("Offsets(%v) mismatch (-want +got):\n%s", tt.sizes, diff)
		}
	}
}

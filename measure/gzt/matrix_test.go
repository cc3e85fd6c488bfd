package gzt

import (
	"errors"
	"testing"

	"github.com/TheSochaLab/GZT-method-for-data-recovery/internal/testutil"
)

func TestBuildMatrix_FiveSamples(t *testing.T) {
	c, err := BuildMatrix([]float64{1, 2, 3, 4, 5}, 2)
	if err != nil {
		t.Fatalf("BuildMatrix: %v", err)
	}

	rows, cols := c.Dims()
	if rows != 4 || cols != 2 {
		t.Fatalf("dims = %dx%d, want 4x2", rows, cols)
	}

	want := [][]float64{{1, 2}, {2, 3}, {3, 4}, {4, 5}}
	for r := range want {
		for i := range want[r] {
			if got := c.At(r, i); got != want[r][i] {
				t.Errorf("C[%d][%d] = %v, want %v", r, i, got, want[r][i])
			}
		}
	}
}

func TestBuildMatrix_ShapeAndContent(t *testing.T) {
	s := testutil.DeterministicNoise(3, 1, 40)

	const window = 7

	c, err := BuildMatrix(s, window)
	if err != nil {
		t.Fatalf("BuildMatrix: %v", err)
	}

	rows, cols := c.Dims()
	if rows != len(s)-window+1 || cols != window {
		t.Fatalf("dims = %dx%d, want %dx%d", rows, cols, len(s)-window+1, window)
	}

	for r := range rows {
		for i := range cols {
			if got := c.At(r, i); got != s[r+i] {
				t.Fatalf("C[%d][%d] = %v, want s[%d] = %v", r, i, got, r+i, s[r+i])
			}
		}
	}
}

func TestBuildMatrix_DoesNotAliasSource(t *testing.T) {
	s := []float64{1, 2, 3, 4}

	c, err := BuildMatrix(s, 2)
	if err != nil {
		t.Fatalf("BuildMatrix: %v", err)
	}

	s[0] = 99
	if got := c.At(0, 0); got != 1 {
		t.Fatalf("C[0][0] = %v after mutating source, want 1", got)
	}
}

func TestBuildMatrix_InvalidWindow(t *testing.T) {
	s := []float64{1, 2, 3, 4, 5}

	for _, window := range []int{-1, 0, 5, 6, 100} {
		_, err := BuildMatrix(s, window)
		if !errors.Is(err, ErrInvalidWindow) {
			t.Errorf("window %d: err = %v, want ErrInvalidWindow", window, err)
		}
	}
}

func TestBuildMatrix_SmallestValidWindow(t *testing.T) {
	c, err := BuildMatrix([]float64{7, 8}, 1)
	if err != nil {
		t.Fatalf("BuildMatrix: %v", err)
	}

	rows, cols := c.Dims()
	if rows != 2 || cols != 1 {
		t.Fatalf("dims = %dx%d, want 2x1", rows, cols)
	}
}

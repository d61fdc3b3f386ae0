package combination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name   string
		groups [][]string
		want   [][]string
	}{
		{
			name:   "no groups yields one empty combination",
			groups: [][]string{},
			want:   [][]string{{}},
		},
		{
			name:   "single group",
			groups: [][]string{{"S", "M", "L"}},
			want:   [][]string{{"S"}, {"M"}, {"L"}},
		},
		{
			name:   "two groups, last varies fastest",
			groups: [][]string{{"Red", "Blue"}, {"S", "M", "L"}},
			want: [][]string{
				{"Red", "S"}, {"Red", "M"}, {"Red", "L"},
				{"Blue", "S"}, {"Blue", "M"}, {"Blue", "L"},
			},
		},
		{
			name:   "empty group yields nothing",
			groups: [][]string{{"Red", "Blue"}, {}},
			want:   [][]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Generate(tt.groups)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.Equal(t, tt.want[i], got[i])
			}
			assert.Equal(t, len(got), Count(tt.groups))
		})
	}
}

func TestGenerateSizes(t *testing.T) {
	for _, sizes := range [][]int{{0}, {1}, {2, 3}, {3, 1, 4}} {
		groups := make([][]int, len(sizes))
		want := 1
		for i, n := range sizes {
			groups[i] = make([]int, n)
			for j := range groups[i] {
				groups[i][j] = j
			}
			want *= n
		}

		got := Generate(groups)
		require.Len(t, got, want, "sizes %v", sizes)
		for _, combo := range got {
			assert.Len(t, combo, len(sizes))
		}
	}
}

func TestGenerateDoesNotShareBackingArrays(t *testing.T) {
	got := Generate([][]string{{"a", "b"}, {"1", "2"}, {"x", "y"}})
	got[0][2] = "mutated"
	assert.Equal(t, []string{"a", "1", "y"}, got[1])
	assert.Equal(t, []string{"a", "2", "x"}, got[2])
}

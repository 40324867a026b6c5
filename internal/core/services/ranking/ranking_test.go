package ranking

import (
	"testing"

	"github.com/AntonioJCosta/histpick/internal/core/domain/history"
	"github.com/stretchr/testify/assert"
)

func TestRank(t *testing.T) {
	tests := []struct {
		name string
		log  []string
		want []string
	}{
		{
			name: "empty log",
			log:  nil,
			want: []string{},
		},
		{
			name: "frequency decides",
			log:  []string{"ls", "cd", "ls", "pwd", "ls", "cd"},
			want: []string{"ls", "cd", "pwd"},
		},
		{
			name: "equal frequency falls back to recency",
			log:  []string{"a", "b", "a", "b"},
			want: []string{"b", "a"},
		},
		{
			name: "all unique is most recent first",
			log:  []string{"one", "two", "three"},
			want: []string{"three", "two", "one"},
		},
		{
			name: "recency uses latest occurrence",
			log:  []string{"x", "y", "z", "x"},
			want: []string{"x", "z", "y"},
		},
		{
			name: "ties inside a frequency group",
			log:  []string{"git status", "make", "git status", "make", "vim", "go test"},
			want: []string{"make", "git status", "go test", "vim"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Rank(tt.log))
		})
	}
}

func TestRankDoesNotModifyInput(t *testing.T) {
	log := []string{"b", "a", "b"}
	Rank(log)
	assert.Equal(t, []string{"b", "a", "b"}, log)
}

func TestRankIsFixedPointOverItsOutput(t *testing.T) {
	log := []string{"ls", "cd", "ls", "pwd", "ls", "cd", "make", "make", "vim"}
	ranked := Rank(log)
	frequencies := Frequencies(log)

	// Rebuild a log with the same multiplicities where the ranked order is
	// also the recency order: lowest ranked first, each command's copies
	// grouped together.
	var synthetic []string
	for i := len(frequencies) - 1; i >= 0; i-- {
		for n := 0; n < frequencies[i].Count; n++ {
			synthetic = append(synthetic, frequencies[i].Command)
		}
	}

	assert.Equal(t, ranked, Rank(synthetic))
}

func TestFrequencies(t *testing.T) {
	got := Frequencies([]string{"ls", "cd", "ls", "pwd", "ls", "cd"})
	want := []history.CommandFrequency{
		{Command: "ls", Count: 3},
		{Command: "cd", Count: 2},
		{Command: "pwd", Count: 1},
	}
	assert.Equal(t, want, got)
}

/*
Package ranking orders a chronological command log by how often and how
recently each command was used.
*/
package ranking

import (
	"sort"

	"github.com/AntonioJCosta/histpick/internal/core/domain/history"
)

/*
Rank returns the distinct commands of log ordered by frequency, descending,
with ties broken by recency (the command whose latest occurrence is more recent
comes first). log is chronological, oldest first, and is not modified.

The order is built in two stable passes: first every occurrence is ordered by
the position of its command's latest occurrence, newest first; then a stable
sort by frequency keeps that recency order inside each frequency group.
Duplicates are dropped last, keeping the first (highest ranked) occurrence.
*/
func Rank(log []string) []string {
	if len(log) == 0 {
		return []string{}
	}

	counts := make(map[string]int, len(log))
	lastSeen := make(map[string]int, len(log))
	for i, cmd := range log {
		counts[cmd]++
		lastSeen[cmd] = i
	}

	ordered := make([]string, len(log))
	copy(ordered, log)
	sort.SliceStable(ordered, func(i, j int) bool {
		return lastSeen[ordered[i]] > lastSeen[ordered[j]]
	})
	sort.SliceStable(ordered, func(i, j int) bool {
		return counts[ordered[i]] > counts[ordered[j]]
	})

	return removeDuplicates(ordered)
}

// Frequencies returns each distinct command of log with its count, in Rank order.
func Frequencies(log []string) []history.CommandFrequency {
	counts := make(map[string]int, len(log))
	for _, cmd := range log {
		counts[cmd]++
	}
	ranked := Rank(log)
	frequencies := make([]history.CommandFrequency, 0, len(ranked))
	for _, cmd := range ranked {
		frequencies = append(frequencies, history.CommandFrequency{Command: cmd, Count: counts[cmd]})
	}
	return frequencies
}

// removeDuplicates keeps the first occurrence of every command.
func removeDuplicates(commands []string) []string {
	seen := make(map[string]struct{}, len(commands))
	unique := make([]string, 0, len(commands))
	for _, cmd := range commands {
		if _, ok := seen[cmd]; ok {
			continue
		}
		seen[cmd] = struct{}{}
		unique = append(unique, cmd)
	}
	return unique
}

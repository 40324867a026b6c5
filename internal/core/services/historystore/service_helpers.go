package historystore

// without returns a new slice holding every element of commands except cmd.
func without(commands []string, cmd string) []string {
	kept := make([]string, 0, len(commands))
	for _, c := range commands {
		if c != cmd {
			kept = append(kept, c)
		}
	}
	return kept
}

// removeDuplicates keeps the first occurrence of every command, so a
// hand-edited favorites file cannot break the toggle pairing.
func removeDuplicates(commands []string) []string {
	seen := make(map[string]struct{}, len(commands))
	unique := make([]string, 0, len(commands))
	for _, c := range commands {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		unique = append(unique, c)
	}
	return unique
}

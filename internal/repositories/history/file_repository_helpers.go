package history

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const maxLineLength = 1024 * 1024

// toUserFriendlyPath converts an absolute path to a ~/-based path if it's under the user's home directory.
// If the home directory cannot be determined or the path is not under home, it returns the original path.
func toUserFriendlyPath(absPath string) string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return absPath
	}
	if absPath == homeDir {
		return "~"
	}
	if !strings.HasPrefix(absPath, homeDir+string(filepath.Separator)) {
		return absPath
	}
	relPath, err := filepath.Rel(homeDir, absPath)
	if err != nil {
		return absPath
	}
	return filepath.Join("~", relPath)
}

// expandHome resolves a leading ~/ and makes relative paths relative to home,
// the way shells treat HISTFILE.
func expandHome(path, homeDir string) string {
	switch {
	case path == "~":
		return homeDir
	case strings.HasPrefix(path, "~/"):
		return filepath.Join(homeDir, path[2:])
	case !filepath.IsAbs(path):
		return filepath.Join(homeDir, path)
	}
	return path
}

// findUserHistoryFile looks for an existing history file: $HISTFILE first, then
// each candidate, relative to the home directory, in order.
func findUserHistoryFile(candidates []string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}

	if histFileEnvVal := os.Getenv("HISTFILE"); histFileEnvVal != "" {
		pathToCheck := expandHome(histFileEnvVal, homeDir)
		if _, err := os.Stat(pathToCheck); err == nil {
			return pathToCheck, nil
		}
	}

	for _, name := range candidates {
		p := expandHome(name, homeDir)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("could not find a shell history file (tried $HISTFILE, %s)", strings.Join(candidates, ", "))
}

func defaultHistoryFileForShell(shellName, homeDir string) string {
	if shellName == "zsh" {
		return filepath.Join(homeDir, ".zsh_history")
	}
	return filepath.Join(homeDir, ".bash_history")
}

// ensureFile creates path and its parent directories when missing.
func ensureFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", toUserFriendlyPath(filepath.Dir(path)), err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", toUserFriendlyPath(path), err)
	}
	return file.Close()
}

func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// replaceFile writes content to a temporary file next to path and renames it
// over path, keeping the original permissions.
func replaceFile(path, content string) error {
	mode := os.FileMode(0600)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

/*
parseHistoryLine extracts the command from one history file line.
zsh extended lines look like ": 1700000000:0;git status"; bash writes
"#1700000000" timestamp lines before commands when HISTTIMEFORMAT is set.
Blank and timestamp lines yield ok == false. metafied is set for zsh files,
whose non-ASCII bytes are escaped (see unmetafy).
*/
func parseHistoryLine(line string, metafied bool) (cmd string, ok bool) {
	line = strings.TrimRight(line, " \t\r")
	if strings.TrimSpace(line) == "" || isBashTimestamp(line) {
		return "", false
	}
	if rest, isZsh := stripZshHeader(line); isZsh {
		if strings.TrimSpace(rest) == "" {
			return "", false
		}
		line = rest
	}
	if metafied {
		line = unmetafy(line)
	}
	return line, true
}

// zshMeta marks a byte that zsh stored XORed with 0x20.
const zshMeta = 0x83

// unmetafy decodes zsh's history encoding, where some bytes of multibyte
// characters are written as zshMeta followed by the byte XOR 0x20.
func unmetafy(s string) string {
	if strings.IndexByte(s, zshMeta) < 0 {
		return s
	}
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == zshMeta && i+1 < len(s) {
			i++
			b = append(b, s[i]^0x20)
			continue
		}
		b = append(b, s[i])
	}
	return string(b)
}

// isZshHistory reports whether path holds zsh history. The file name decides
// when it names a shell, otherwise the user's shell does.
func isZshHistory(path, shell string) bool {
	base := strings.ToLower(filepath.Base(path))
	switch {
	case strings.Contains(base, "zsh"):
		return true
	case strings.Contains(base, "bash"):
		return false
	}
	return shell == "zsh"
}

func isBashTimestamp(line string) bool {
	return len(line) > 1 && line[0] == '#' && isDigits(line[1:])
}

// stripZshHeader returns the command after a ": <start>:<elapsed>;" header.
func stripZshHeader(line string) (string, bool) {
	if !strings.HasPrefix(line, ": ") {
		return "", false
	}
	header, rest, found := strings.Cut(line[2:], ";")
	if !found {
		return "", false
	}
	start, elapsed, found := strings.Cut(header, ":")
	if !found || !isDigits(start) || !isDigits(elapsed) {
		return "", false
	}
	return rest, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// dropCommand removes every line of content whose command is cmd, together
// with a bash timestamp line directly in front of it. Other lines are kept
// byte for byte. Lines are compared after decoding, so cmd is the command as
// shown to the user. It returns the new content and the number of entries removed.
func dropCommand(content, cmd string, metafied bool) (string, int) {
	lines := strings.SplitAfter(content, "\n")
	var b strings.Builder
	b.Grow(len(content))

	removed := 0
	pendingTimestamp := ""
	for _, raw := range lines {
		if raw == "" {
			continue
		}
		line := strings.TrimSuffix(raw, "\n")
		if isBashTimestamp(strings.TrimRight(line, " \t\r")) {
			b.WriteString(pendingTimestamp)
			pendingTimestamp = raw
			continue
		}
		if parsed, ok := parseHistoryLine(line, metafied); ok && parsed == cmd {
			pendingTimestamp = ""
			removed++
			continue
		}
		b.WriteString(pendingTimestamp)
		pendingTimestamp = ""
		b.WriteString(raw)
	}
	b.WriteString(pendingTimestamp)
	return b.String(), removed
}

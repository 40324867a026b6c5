//go:build !(linux || darwin)

package shellinject

import "fmt"

func pushToTerminal(device, _ string) error {
	return fmt.Errorf("typing into %s: %w", device, ErrUnsupported)
}

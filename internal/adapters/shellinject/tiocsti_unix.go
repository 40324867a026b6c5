//go:build linux || darwin

package shellinject

import (
	"errors"
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// pushToTerminal pushes text into the input queue of the terminal at device,
// one byte per TIOCSTI ioctl, as if the user had typed it.
func pushToTerminal(device, text string) error {
	tty, err := os.OpenFile(device, os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	defer tty.Close()

	fd := tty.Fd()
	if !term.IsTerminal(int(fd)) {
		return fmt.Errorf("%s is not a terminal: %w", device, ErrUnsupported)
	}
	for _, b := range []byte(text) {
		c := b
		_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, uintptr(unix.TIOCSTI), uintptr(unsafe.Pointer(&c)))
		if errno != 0 {
			// Newer kernels disable TIOCSTI (dev.tty.legacy_tiocsti=0) and answer EIO or EPERM.
			if errors.Is(errno, unix.EPERM) || errors.Is(errno, unix.EIO) || errors.Is(errno, unix.ENOTTY) || errors.Is(errno, unix.EINVAL) {
				return fmt.Errorf("TIOCSTI: %w: %v", ErrUnsupported, errno)
			}
			return fmt.Errorf("TIOCSTI: %w", errno)
		}
	}
	return nil
}

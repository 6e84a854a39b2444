package clipboard

import (
	"fmt"

	atotto "github.com/atotto/clipboard"
)

// System copies to the OS clipboard through atotto, which picks pbcopy,
// the Win32 clipboard, or xsel/xclip/wl-copy depending on the platform.
type System struct {
	unsupported bool
	writeAll    func(text string) error
}

func NewSystem() *System {
	return &System{
		unsupported: atotto.Unsupported,
		writeAll:    atotto.WriteAll,
	}
}

// Copy reports false with a nil error when the host has no clipboard tool,
// and an error when a tool was found but writing to it failed.
func (s *System) Copy(text string) (bool, error) {
	if s.unsupported {
		return false, nil
	}

	if err := s.writeAll(text); err != nil {
		return false, fmt.Errorf("copy to clipboard: %w", err)
	}
	return true, nil
}

// None is a clipboard for hosts without one. Every copy is refused, so
// buttons fall back to the manual copy hint.
type None struct{}

func (None) Copy(string) (bool, error) {
	return false, nil
}

package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// copyAnchor puts a link to the active section on the system clipboard.
func (m *model) copyAnchor() {
	url := m.cfg.AnchorURL(m.nav.CurrentActive().Anchor())
	if err := writeClipboard(url); err != nil {
		m.errorMessage = fmt.Sprintf("Error copying: %v", err)
		m.log.Warn("clipboard write failed", "error", err)
		return
	}
	m.successMessage = "Copied " + url
}

package clipboard

import (
	"log"

	"novo_seguros/internal/usecase/interfaces"

	"github.com/atotto/clipboard"
)

// SystemClipboard writes to the host clipboard. Headless environments (no X
// display, no pbcopy/xclip) make the write fail; the caller degrades that to
// a notification.

type SystemClipboard struct{}

var _ interfaces.IClipboard = (*SystemClipboard)(nil)

func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{}
}

func (c *SystemClipboard) WriteText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		log.Printf("[clipboard][infra] write failed err=%v", err)
		return err
	}
	return nil
}

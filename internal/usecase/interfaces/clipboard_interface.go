package interfaces

// IClipboard abstracts the platform clipboard. Success or failure of the
// write is the only observable contract.
//
//go:generate mockgen -source=clipboard_interface.go -destination=mocks/mock_clipboard.go -package=mock_interfaces

type IClipboard interface {
	WriteText(text string) error
}

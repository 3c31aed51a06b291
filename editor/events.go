package editor

import (
	"github.com/iw2rmb/inkwell/buffer"
)

type ChangeEvent struct {
	Version     uint64
	TextVersion uint64
	Cursor      buffer.Pos

	// Full document text after the change.
	Text string
}

func buildChangeEvent(b *buffer.Buffer) ChangeEvent {
	return ChangeEvent{
		Version:     b.Version(),
		TextVersion: b.TextVersion(),
		Cursor:      b.Cursor(),
		Text:        b.Text(),
	}
}

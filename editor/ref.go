package editor

import (
	"errors"

	"github.com/iw2rmb/inkwell/buffer"
)

var (
	ErrReadOnly      = errors.New("editor: read-only")
	ErrInvalidInsert = errors.New("editor: invalid embed insertion")
)

// Ref is a handle to a mounted editor. It shares the buffer with the Model it
// came from, so edits made through it are observed on the Model's next
// Update.
type Ref struct {
	buf *buffer.Buffer
	st  *surfaceState
}

// SelectionCursor returns the document offset of the selection start, or of
// the cursor when nothing is selected. It reports false while the editor is
// not focused.
func (r *Ref) SelectionCursor() (int, bool) {
	if r == nil || r.buf == nil || !r.st.focused {
		return 0, false
	}
	if sel, ok := r.buf.Selection(); ok {
		off, ok := r.buf.OffsetFromPos(buffer.NormalizeRange(sel).Start)
		return off, ok
	}
	return r.buf.CursorOffset(), true
}

// InsertEmbeddedImage inserts an inline image with source dataURI at index.
func (r *Ref) InsertEmbeddedImage(index int, dataURI string) error {
	if r == nil || r.buf == nil {
		return ErrInvalidInsert
	}
	if r.st.readOnly {
		return ErrReadOnly
	}
	if !r.buf.InsertEmbed(index, dataURI) {
		return ErrInvalidInsert
	}
	return nil
}

// Package clipboard models the data a paste delivers to the editor: a list of
// typed items, some of which may be images.
package clipboard

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode"

	"github.com/gabriel-vasile/mimetype"
)

const TypeText = "text/plain"

var ErrNotFile = errors.New("clipboard: not a regular file")

// Item is one entry of a paste. Type is the declared MIME type; the payload
// is only read through Open.
type Item struct {
	Type string

	text   string
	isText bool
	open   func() (io.ReadCloser, error)
}

func TextItem(s string) Item {
	return Item{Type: TypeText, text: s, isText: true}
}

// BytesItem declares data as typ without inspecting it.
func BytesItem(typ string, data []byte) Item {
	return Item{
		Type: typ,
		open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

// FileItem declares the file at path with the MIME type sniffed from its
// contents.
func FileItem(path string) (Item, error) {
	st, err := os.Stat(path)
	if err != nil {
		return Item{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if !st.Mode().IsRegular() {
		return Item{}, fmt.Errorf("%s: %w", path, ErrNotFile)
	}
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return Item{}, fmt.Errorf("detect %s: %w", path, err)
	}
	return Item{
		Type: mt.String(),
		open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}, nil
}

// IsImage reports whether the declared type names an image.
func (it Item) IsImage() bool {
	return strings.Contains(it.Type, "image")
}

// Text returns the payload of a text item.
func (it Item) Text() (string, bool) {
	return it.text, it.isText
}

func (it Item) Open() (io.ReadCloser, error) {
	if it.isText {
		return io.NopCloser(strings.NewReader(it.text)), nil
	}
	if it.open == nil {
		return nil, errors.New("clipboard: item has no payload")
	}
	return it.open()
}

// Event is a single paste.
type Event struct {
	Items []Item
}

// Images returns the image items of e in paste order.
func (e Event) Images() []Item {
	var out []Item
	for _, it := range e.Items {
		if it.IsImage() {
			out = append(out, it)
		}
	}
	return out
}

// Text returns the concatenated text items of e.
func (e Event) Text() string {
	var sb strings.Builder
	for _, it := range e.Items {
		if s, ok := it.Text(); ok {
			sb.WriteString(s)
		}
	}
	return sb.String()
}

// Limits on what FromPaste treats as dropped files. Longer pastes are plain
// text and never touch the filesystem.
const (
	MaxPathLines = 16
	maxPathLen   = 4096
)

// FromPaste builds the event for text pasted into a terminal. Terminals paste
// the path of a file dropped onto them, so in a paste of at most MaxPathLines
// lines every absolute path naming an existing image file also becomes a file
// item.
func FromPaste(text string) Event {
	ev := Event{Items: []Item{TextItem(text)}}
	if strings.Count(text, "\n") >= MaxPathLines {
		return ev
	}
	for _, line := range strings.Split(text, "\n") {
		path := unquotePath(line)
		if !isPathLike(path) {
			continue
		}
		it, err := FileItem(path)
		if err != nil || !it.IsImage() {
			continue
		}
		ev.Items = append(ev.Items, it)
	}
	return ev
}

func isPathLike(s string) bool {
	if s == "" || len(s) > maxPathLen || !filepath.IsAbs(s) {
		return false
	}
	return !strings.ContainsFunc(s, unicode.IsControl)
}

func unquotePath(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			return s[1 : len(s)-1]
		}
	}
	s = strings.TrimPrefix(s, "file://")
	return strings.ReplaceAll(s, `\ `, " ")
}

// Memory is an in-process text clipboard.
type Memory struct {
	mu   sync.Mutex
	text string
}

func (m *Memory) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

func (m *Memory) WriteText(s string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = s
	return nil
}

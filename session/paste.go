package session

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/iw2rmb/inkwell/clipboard"
)

var (
	ErrNotImage      = errors.New("session: not image data")
	ErrImageTooLarge = errors.New("session: image too large")
)

type imageDecodedMsg struct {
	id       int
	declared string
	uri      string
	err      error
}

func (c *Controller) applyPaste(ev clipboard.Event) tea.Cmd {
	if !c.alive() {
		c.log.Debug("dropping paste without surface")
		return nil
	}

	images := ev.Images()
	if len(images) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(images))
	for _, it := range images {
		cmds = append(cmds, c.decodeCmd(it))
	}
	return tea.Batch(cmds...)
}

// decodeCmd reads one clipboard item off the event loop. Items complete
// independently and in no particular order.
func (c *Controller) decodeCmd(it clipboard.Item) tea.Cmd {
	id, ctx, limit := c.id, c.ctx, c.maxImageBytes
	return func() tea.Msg {
		uri, err := DecodeImage(ctx, it, limit)
		return imageDecodedMsg{id: id, declared: it.Type, uri: uri, err: err}
	}
}

func (c *Controller) handleDecoded(msg imageDecodedMsg) {
	if !c.alive() {
		c.log.Debug("discarding decoded image", zap.String("type", msg.declared))
		return
	}
	if msg.err != nil {
		c.log.Debug("skipping clipboard item", zap.String("type", msg.declared), zap.Error(msg.err))
		return
	}

	idx, ok := c.surface.SelectionCursor()
	if !ok {
		c.log.Debug("no cursor, skipping image insert")
		return
	}
	if err := c.surface.InsertEmbeddedImage(idx, msg.uri); err != nil {
		c.log.Warn("insert image", zap.Int("index", idx), zap.Error(err))
		return
	}
	c.log.Debug("inserted image", zap.Int("index", idx), zap.Int("bytes", len(msg.uri)))
}

// DecodeImage reads it and returns a base64 data URI. The payload must be
// image data no larger than limit bytes; the declared type is not trusted.
func DecodeImage(ctx context.Context, it clipboard.Item, limit int64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	rc, err := it.Open()
	if err != nil {
		return "", fmt.Errorf("open %s: %w", it.Type, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, limit+1))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", it.Type, err)
	}
	if int64(len(data)) > limit {
		return "", fmt.Errorf("%w: over %d bytes", ErrImageTooLarge, limit)
	}

	mt, _, _ := strings.Cut(mimetype.Detect(data).String(), ";")
	if !strings.HasPrefix(mt, "image/") {
		return "", fmt.Errorf("%w: detected %s", ErrNotImage, mt)
	}
	return "data:" + mt + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

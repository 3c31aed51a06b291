package session

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/iw2rmb/inkwell/clipboard"
	"github.com/iw2rmb/inkwell/debounce"
)

// DefaultMaxImageBytes caps the size of a single pasted image.
const DefaultMaxImageBytes = 10 << 20

var (
	ErrAlreadyReady = errors.New("session: already ready")
	ErrClosed       = errors.New("session: closed")
)

// Status is the load state of a session. It moves from Initializing to Ready
// once and never back.
type Status uint8

const (
	StatusInitializing Status = iota
	StatusReady
)

func (s Status) String() string {
	switch s {
	case StatusInitializing:
		return "initializing"
	case StatusReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Surface is the editor capability a session drives.
type Surface interface {
	// SelectionCursor returns the document offset of the cursor, or false
	// when the surface has no selection (e.g. it is not focused).
	SelectionCursor() (int, bool)
	InsertEmbeddedImage(index int, dataURI string) error
}

// Loader produces the initial document.
type Loader func(ctx context.Context) (string, error)

type Config struct {
	// Quiet interval of both synchronizers. Zero selects debounce.DefaultInterval.
	Interval time.Duration

	// Pasted images larger than this are skipped. Zero selects DefaultMaxImageBytes.
	MaxImageBytes int64

	// May be attached later with Attach.
	Surface Surface

	Logger *zap.Logger
}

// Controller is the editor session controller.
type Controller struct {
	id  int
	log *zap.Logger

	status Status
	doc    string
	size   int
	err    error

	surface       Surface
	maxImageBytes int64

	changes *debounce.Synchronizer[string]
	pastes  *debounce.Synchronizer[clipboard.Event]

	ctx    context.Context
	cancel context.CancelFunc
	closed bool
}

var lastID int64

func New(cfg Config) *Controller {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.MaxImageBytes <= 0 {
		cfg.MaxImageBytes = DefaultMaxImageBytes
	}

	c := &Controller{
		id:            int(atomic.AddInt64(&lastID, 1)),
		log:           cfg.Logger.Named("session"),
		status:        StatusInitializing,
		surface:       cfg.Surface,
		maxImageBytes: cfg.MaxImageBytes,
	}
	c.ctx, c.cancel = context.WithCancel(context.Background())
	c.changes = debounce.New(cfg.Interval, c.applyChange)
	c.pastes = debounce.New(cfg.Interval, c.applyPaste)
	return c
}

// Attach hands the controller its editor surface.
func (c *Controller) Attach(s Surface) {
	c.surface = s
}

func (c *Controller) Status() Status { return c.status }

// Document returns the current document. It reports false while the session
// is still initializing.
func (c *Controller) Document() (string, bool) {
	if c.status != StatusReady {
		return "", false
	}
	return c.doc, true
}

// Err returns the last load failure.
func (c *Controller) Err() error { return c.err }

// Initialize installs seed as the document and marks the session ready.
func (c *Controller) Initialize(seed string) error {
	if c.closed {
		return ErrClosed
	}
	if c.status == StatusReady {
		return ErrAlreadyReady
	}
	c.status = StatusInitializing
	c.setDocument(seed)
	c.status = StatusReady
	c.err = nil
	c.log.Info("document loaded", zap.Int("bytes", c.size))
	return nil
}

// LoadedMsg reports the outcome of Load.
type LoadedMsg struct {
	id  int
	doc string
	Err error
}

// Load runs fn off the event loop. The session stays initializing until the
// resulting LoadedMsg is handled by Update.
func (c *Controller) Load(fn Loader) tea.Cmd {
	if c.closed || c.status == StatusReady || fn == nil {
		return nil
	}
	id, ctx := c.id, c.ctx
	return func() tea.Msg {
		doc, err := fn(ctx)
		return LoadedMsg{id: id, doc: doc, Err: err}
	}
}

// OnDocumentChanged forwards a full-text change from the surface. The
// document is replaced once the change stream has been quiet for an
// interval.
func (c *Controller) OnDocumentChanged(raw string) tea.Cmd {
	if c.status != StatusReady {
		c.log.Debug("dropping change before ready")
		return nil
	}
	return c.changes.Submit(raw)
}

// OnImagePasted forwards a paste from the surface. Once the paste stream has
// been quiet for an interval, every image item of the last paste is decoded
// and inserted at the cursor.
func (c *Controller) OnImagePasted(ev clipboard.Event) tea.Cmd {
	return c.pastes.Submit(ev)
}

func (c *Controller) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case debounce.CommitMsg:
		switch msg.ID {
		case c.changes.ID():
			return c.changes.Update(msg)
		case c.pastes.ID():
			return c.pastes.Update(msg)
		}
	case LoadedMsg:
		if msg.id == c.id {
			c.handleLoaded(msg)
		}
	case imageDecodedMsg:
		if msg.id == c.id {
			c.handleDecoded(msg)
		}
	}
	return nil
}

// Close tears the session down. Pending commits are cancelled and results of
// in-flight loads and decodes are discarded when they arrive.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.changes.Stop()
	c.pastes.Stop()
	c.cancel()
}

func (c *Controller) Closed() bool { return c.closed }

func (c *Controller) handleLoaded(msg LoadedMsg) {
	if c.closed {
		return
	}
	if msg.Err != nil {
		c.err = msg.Err
		c.log.Error("load document", zap.Error(msg.Err))
		return
	}
	if err := c.Initialize(msg.doc); err != nil {
		c.log.Warn("ignoring load result", zap.Error(err))
	}
}

func (c *Controller) applyChange(doc string) tea.Cmd {
	c.setDocument(doc)
	return nil
}

func (c *Controller) setDocument(doc string) {
	c.doc = doc
	c.size = encodedLen(doc)
}

// alive reports whether deferred work may still touch the surface.
func (c *Controller) alive() bool {
	return !c.closed && c.surface != nil
}

package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/aretw0/guess/internal/logging"
	"github.com/aretw0/guess/pkg/domain"
)

// Prompt is written before every read.
const Prompt = "> "

// TextHandler implements the standard line-oriented interface.
type TextHandler struct {
	Reader       *bufio.Reader
	Writer       io.Writer
	Renderer     ContentRenderer
	MaxInputSize int
	Logger       *slog.Logger

	inputChan chan inputResult
	done      chan struct{}
	exited    chan struct{}
	initOnce  sync.Once
	startOnce sync.Once
	closeOnce sync.Once
}

type inputResult struct {
	text     string
	tooLarge bool
	err      error
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerRenderer configures the content renderer.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// WithMaxInputSize bounds the length of an accepted line.
func WithMaxInputSize(limit int) TextHandlerOption {
	return func(h *TextHandler) {
		h.MaxInputSize = limit
	}
}

// WithTextHandlerLogger configures the logger used for rejected lines.
func WithTextHandlerLogger(logger *slog.Logger) TextHandlerOption {
	return func(h *TextHandler) {
		h.Logger = logger
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Reader:       bufio.NewReader(r),
		Writer:       w,
		MaxInputSize: DefaultMaxInputSize,
		Logger:       logging.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *TextHandler) init() {
	h.initOnce.Do(func() {
		h.done = make(chan struct{})
	})
}

func (h *TextHandler) initPump() {
	h.init()
	h.startOnce.Do(func() {
		h.inputChan = make(chan inputResult)
		h.exited = make(chan struct{})
		go h.pump()
	})
}

// Close stops the input pump. A pump blocked inside a read exits as soon as
// that read returns. Input returns io.EOF afterwards. Safe to call twice.
func (h *TextHandler) Close() error {
	h.init()
	h.closeOnce.Do(func() {
		close(h.done)
	})
	return nil
}

// pump moves blocking reads off the caller's goroutine so Input can honour
// cancellation. It stops at the first read error or on Close.
func (h *TextHandler) pump() {
	defer close(h.exited)
	defer close(h.inputChan)

	limit := h.MaxInputSize
	if limit <= 0 {
		limit = DefaultMaxInputSize
	}

	for {
		text, tooLarge, err := readLine(h.Reader, limit)

		// A final line without a newline still counts
		if text != "" || tooLarge {
			if !h.send(inputResult{text: text, tooLarge: tooLarge}) {
				return
			}
		}

		if err != nil {
			if err != io.EOF {
				h.send(inputResult{err: err})
			}
			return
		}
	}
}

func (h *TextHandler) send(res inputResult) bool {
	select {
	case h.inputChan <- res:
		return true
	case <-h.done:
		return false
	}
}

// readLine returns the next line including its terminator. A line longer
// than limit (plus CRLF) is drained without being buffered and reported as
// tooLarge with empty text.
func readLine(r *bufio.Reader, limit int) (string, bool, error) {
	var buf []byte
	tooLarge := false
	for {
		chunk, err := r.ReadSlice('\n')
		if !tooLarge {
			if len(buf)+len(chunk) > limit+2 {
				tooLarge, buf = true, nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if err == bufio.ErrBufferFull {
			continue
		}
		return string(buf), tooLarge, err
	}
}

func (h *TextHandler) Output(ctx context.Context, actions []domain.ActionRequest) (bool, error) {
	needsInput := false
	for _, act := range actions {
		switch act.Type {
		case domain.ActionRenderContent:
			msg, ok := act.Payload.(domain.Message)
			if !ok {
				continue
			}
			output := msg.Text
			if h.Renderer != nil {
				output = h.Renderer(msg)
			}
			if _, err := fmt.Fprintln(h.Writer, output); err != nil {
				return needsInput, err
			}
		case domain.ActionRequestInput:
			needsInput = true
		}
	}
	return needsInput, nil
}

// Input prompts and returns the next trimmed line. Lines that fail
// sanitization come back empty, which the session rejects as not a number.
func (h *TextHandler) Input(ctx context.Context) (string, error) {
	// Ensure the pump is running
	h.initPump()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
		fmt.Fprint(h.Writer, Prompt)
	}

	select {
	case <-ctx.Done():
		// Important: don't print anything here, just exit silently
		return "", ctx.Err()
	case <-h.done:
		return "", io.EOF
	case res, ok := <-h.inputChan:
		if !ok {
			return "", io.EOF
		}
		if res.err != nil {
			return "", res.err
		}
		if res.tooLarge {
			h.Logger.Debug("input discarded by sanitizer", "err", ErrInputTooLarge)
			return "", nil
		}
		clean, err := SanitizeInput(res.text, h.MaxInputSize)
		if err != nil {
			h.Logger.Debug("input discarded by sanitizer", "size", len(res.text), "err", err)
			return "", nil
		}
		return strings.TrimSpace(clean), nil
	}
}

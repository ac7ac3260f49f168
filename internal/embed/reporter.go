// Package embed reports content height to a hosting frame.
//
// When the calculator runs embedded, the host needs the rendered content
// height to size its frame. The reporter is an injected collaborator with an
// explicit lifecycle rather than ambient global state: callers construct it
// with the channel to the host, Start it, push height changes, and Stop it.
package embed

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
)

// messageType is the fixed discriminator on every outbound message.
const messageType = "height-update"

// Message is the structured signal posted to the hosting frame.
type Message struct {
	IframeHeight int    `json:"iframeHeight"`
	Type         string `json:"type"`
}

// ErrNotStarted is returned when Report is called outside Start/Stop.
var ErrNotStarted = errors.New("height reporter not started")

// Reporter posts height-update messages as JSON lines to the host writer.
// Safe for concurrent use.
type Reporter struct {
	mu      sync.Mutex
	out     io.Writer
	started bool

	// lastHeight suppresses duplicate updates.
	lastHeight int
}

// NewReporter creates a Reporter writing to out.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out, lastHeight: -1}
}

// Start enables reporting. Idempotent.
func (r *Reporter) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started = true
}

// Stop disables reporting and resets the duplicate filter. Idempotent.
func (r *Reporter) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started = false
	r.lastHeight = -1
}

// Report posts a height update. Repeated identical heights are dropped.
func (r *Reporter) Report(height int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.started {
		return ErrNotStarted
	}
	if height < 0 {
		return fmt.Errorf("height cannot be negative: %d", height)
	}
	if height == r.lastHeight {
		return nil
	}

	msg := Message{IframeHeight: height, Type: messageType}
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encoding height message: %w", err)
	}
	if _, err := r.out.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("posting height message: %w", err)
	}

	r.lastHeight = height
	return nil
}

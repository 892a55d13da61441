package cli

import (
	"context"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/huimingz/gcz/internal/log"
)

// InterruptHandler cancels the run context on SIGINT or SIGTERM. While the
// interactive list owns the terminal Ctrl+C arrives as a key press instead; the
// handler covers the editor, git and line-mode phases.
type InterruptHandler struct {
	cancel      context.CancelFunc
	sigChan     chan os.Signal
	done        chan struct{}
	interrupted atomic.Bool
}

// NewInterruptHandler creates a new interrupt handler
func NewInterruptHandler(cancel context.CancelFunc) *InterruptHandler {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	return &InterruptHandler{
		cancel:  cancel,
		sigChan: sigChan,
		done:    make(chan struct{}),
	}
}

// Start starts the interrupt handler in a goroutine
func (h *InterruptHandler) Start() {
	go h.handleSignals()
}

func (h *InterruptHandler) handleSignals() {
	select {
	case sig := <-h.sigChan:
		h.interrupted.Store(true)
		log.Debug("Received %v, cancelling", sig)
		h.cancel()
	case <-h.done:
	}
}

// IsInterrupted returns whether the handler has been interrupted
func (h *InterruptHandler) IsInterrupted() bool {
	return h.interrupted.Load()
}

// Stop stops the signal handling
func (h *InterruptHandler) Stop() {
	signal.Stop(h.sigChan)
	close(h.done)
}

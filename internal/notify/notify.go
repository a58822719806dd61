// Package notify carries fire-and-forget user-facing notices. Notices are
// feedback for state-changing operations; they are not part of any store's
// correctness.
package notify

import (
	"sync"

	"go.uber.org/zap"
)

// Notifier receives user-visible messages
type Notifier interface {
	Success(message string)
	Error(message string)
}

type zapNotifier struct {
	logger *zap.Logger
}

// NewZapNotifier creates a notifier that writes notices to the log
func NewZapNotifier(logger *zap.Logger) *zapNotifier {
	return &zapNotifier{logger: logger}
}

func (n *zapNotifier) Success(message string) {
	n.logger.Info("notice", zap.String("level", "success"), zap.String("message", message))
}

func (n *zapNotifier) Error(message string) {
	n.logger.Info("notice", zap.String("level", "error"), zap.String("message", message))
}

// Notice is a captured notification
type Notice struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Collector buffers notices so callers can relay them, e.g. into an HTTP
// response. Also used by tests to assert signalling.
type Collector struct {
	mu      sync.Mutex
	notices []Notice
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Success(message string) {
	c.append(Notice{Level: "success", Message: message})
}

func (c *Collector) Error(message string) {
	c.append(Notice{Level: "error", Message: message})
}

// Notices returns the captured notices in order
func (c *Collector) Notices() []Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notice, len(c.notices))
	copy(out, c.notices)
	return out
}

// Reset discards captured notices
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notices = nil
}

func (c *Collector) append(n Notice) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notices = append(c.notices, n)
}

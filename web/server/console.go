package server

import (
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/df07/go-direct-raytracer/pkg/core"
)

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	RenderID  string    `json:"renderId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning", "error"
}

// ConsoleBuffer keeps the most recent console messages across renders
type ConsoleBuffer struct {
	mu       sync.Mutex
	messages []ConsoleMessage
	capacity int
}

// NewConsoleBuffer creates a buffer holding at most capacity messages
func NewConsoleBuffer(capacity int) *ConsoleBuffer {
	return &ConsoleBuffer{capacity: max(1, capacity)}
}

// Add appends a message, dropping the oldest when full
func (cb *ConsoleBuffer) Add(msg ConsoleMessage) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.messages = append(cb.messages, msg)
	if over := len(cb.messages) - cb.capacity; over > 0 {
		cb.messages = append([]ConsoleMessage(nil), cb.messages[over:]...)
	}
}

// Messages returns a copy of the buffered messages, oldest first
func (cb *ConsoleBuffer) Messages() []ConsoleMessage {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	return append([]ConsoleMessage(nil), cb.messages...)
}

// WebLogger implements core.Logger by recording messages in a console buffer
type WebLogger struct {
	renderID string
	console  *ConsoleBuffer
}

// NewWebLogger creates a new web logger for a specific render
func NewWebLogger(renderID string, console *ConsoleBuffer) core.Logger {
	return &WebLogger{
		renderID: renderID,
		console:  console,
	}
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	// Also write to the server log
	log.Printf("[%s] %s", wl.renderID, message)

	if wl.console != nil {
		wl.console.Add(ConsoleMessage{
			RenderID:  wl.renderID,
			Message:   message,
			Timestamp: time.Now(),
			Level:     "info",
		})
	}
}

// handleConsole returns recent console messages
func (s *Server) handleConsole(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.console.Messages())
}

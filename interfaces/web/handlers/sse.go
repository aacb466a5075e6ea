package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"hostpro/application"
	"hostpro/interfaces/web/presenters"
	"hostpro/logging"
)

// SSE event names pushed to browsers.
const (
	EventToasts  = "toasts"
	EventRefresh = "refresh"
)

var errConnectionClosed = errors.New("client connection closed")

// ContextLookup finds the live AppContext for a client.
type ContextLookup interface {
	Get(clientID string) (*application.AppContext, bool)
}

// SSEConnection is one open event stream. A client has one per open tab.
type SSEConnection struct {
	id       string
	clientID string
	writer   http.ResponseWriter
	flusher  http.Flusher
	done     chan struct{}
	mu       sync.Mutex
	lastSent time.Time
}

func (c *SSEConnection) closeDone() {
	select {
	case <-c.done:
	default:
		close(c.done)
	}
}

// SSEManager manages Server-Sent Events connections per client and pushes
// toast stacks and refresh signals to every tab of that client.
type SSEManager struct {
	clients  map[string]map[string]*SSEConnection
	mu       sync.RWMutex
	contexts ContextLookup
	toasts   presenters.ToastRenderer
	logger   *logging.Logger

	keepAlive time.Duration
	staleAge  time.Duration
}

// NewSSEManager creates a new SSE connection manager. The cleanup routine
// runs until ctx is cancelled.
func NewSSEManager(ctx context.Context, contexts ContextLookup, toasts presenters.ToastRenderer) *SSEManager {
	manager := &SSEManager{
		clients:   make(map[string]map[string]*SSEConnection),
		contexts:  contexts,
		toasts:    toasts,
		logger:    logging.Default().WithComponent("sse_manager"),
		keepAlive: 30 * time.Second,
		staleAge:  2 * time.Minute,
	}

	go manager.cleanupRoutine(ctx)

	return manager
}

// AddConnection registers a new stream for clientID.
func (s *SSEManager) AddConnection(clientID string, w http.ResponseWriter) *SSEConnection {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	flusher, ok := w.(http.Flusher)
	if !ok {
		s.logger.Error("Response writer does not support flushing")
		return nil
	}
	flusher.Flush()

	conn := &SSEConnection{
		id:       uuid.NewString(),
		clientID: clientID,
		writer:   w,
		flusher:  flusher,
		done:     make(chan struct{}),
		lastSent: time.Now(),
	}

	s.mu.Lock()
	if s.clients[clientID] == nil {
		s.clients[clientID] = make(map[string]*SSEConnection)
	}
	s.clients[clientID][conn.id] = conn
	tabs := len(s.clients[clientID])
	s.mu.Unlock()

	s.logger.Client("SSE connection opened", clientID, slog.String("connection_id", conn.id), slog.Int("tabs", tabs))
	return conn
}

// RemoveConnection drops one stream.
func (s *SSEManager) RemoveConnection(conn *SSEConnection) {
	s.mu.Lock()
	_, exists := s.clients[conn.clientID][conn.id]
	if exists {
		delete(s.clients[conn.clientID], conn.id)
		if len(s.clients[conn.clientID]) == 0 {
			delete(s.clients, conn.clientID)
		}
	}
	s.mu.Unlock()

	conn.closeDone()
	if exists {
		s.logger.Client("SSE connection closed", conn.clientID, slog.String("connection_id", conn.id))
	}
}

// ConnectionCount returns the number of open streams for clientID.
func (s *SSEManager) ConnectionCount(clientID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients[clientID])
}

func (s *SSEManager) connectionsFor(clientID string) []*SSEConnection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	conns := make([]*SSEConnection, 0, len(s.clients[clientID]))
	for _, c := range s.clients[clientID] {
		conns = append(conns, c)
	}
	return conns
}

func (s *SSEManager) allConnections() []*SSEConnection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var conns []*SSEConnection
	for _, byID := range s.clients {
		for _, c := range byID {
			conns = append(conns, c)
		}
	}
	return conns
}

// BroadcastToasts re-renders the client's current toast stack and pushes it
// to each of the client's open tabs.
func (s *SSEManager) BroadcastToasts(clientID string) {
	conns := s.connectionsFor(clientID)
	if len(conns) == 0 {
		return
	}

	ac, ok := s.contexts.Get(clientID)
	if !ok {
		s.logger.Debug("No app context for toast broadcast", "client_id", clientID)
		return
	}

	html, err := s.toasts.RenderStack(context.Background(), ac.Toasts.List())
	if err != nil {
		s.logger.ClientError("Failed to render toast stack", err, clientID)
		return
	}

	s.broadcast(conns, EventToasts, html)
}

// BroadcastRefresh asks each of the client's tabs to reload, e.g. after the
// theme or session changed in another tab.
func (s *SSEManager) BroadcastRefresh(clientID, reason string) {
	s.broadcast(s.connectionsFor(clientID), EventRefresh, reason)
}

// DisconnectClient closes every stream of clientID.
func (s *SSEManager) DisconnectClient(clientID string) {
	for _, conn := range s.connectionsFor(clientID) {
		s.RemoveConnection(conn)
	}
}

func (s *SSEManager) broadcast(conns []*SSEConnection, event, data string) {
	for _, conn := range conns {
		if err := s.sendToConnection(conn, event, data); err != nil {
			s.logger.Warn("Failed to send SSE event",
				"client_id", conn.clientID,
				"connection_id", conn.id,
				"event", event,
				"error", err)
			s.RemoveConnection(conn)
		}
	}
}

// sendToConnection writes one SSE frame. Keep-alives are sent as comments so
// they do not trigger HTMX swaps.
func (s *SSEManager) sendToConnection(conn *SSEConnection, event, data string) error {
	select {
	case <-conn.done:
		return errConnectionClosed
	default:
	}

	var b strings.Builder
	if event == "keepalive" {
		fmt.Fprintf(&b, ": %s\n\n", data)
	} else {
		fmt.Fprintf(&b, "event: %s\n", event)
		for _, line := range strings.Split(data, "\n") {
			fmt.Fprintf(&b, "data: %s\n", line)
		}
		b.WriteString("\n")
	}

	conn.mu.Lock()
	defer conn.mu.Unlock()

	if _, err := conn.writer.Write([]byte(b.String())); err != nil {
		return fmt.Errorf("write error: %w", err)
	}
	conn.flusher.Flush()
	conn.lastSent = time.Now()
	return nil
}

// SendKeepAlive sends a comment frame to every open stream.
func (s *SSEManager) SendKeepAlive() {
	stamp := time.Now().Format(time.RFC3339)
	for _, conn := range s.allConnections() {
		if err := s.sendToConnection(conn, "keepalive", stamp); err != nil {
			s.logger.Debug("Keep-alive failed, removing connection", "client_id", conn.clientID)
			s.RemoveConnection(conn)
		}
	}
}

func (s *SSEManager) cleanupRoutine(ctx context.Context) {
	ticker := time.NewTicker(s.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			for _, conn := range s.allConnections() {
				s.RemoveConnection(conn)
			}
			return
		case <-ticker.C:
			s.SendKeepAlive()

			threshold := time.Now().Add(-s.staleAge)
			for _, conn := range s.allConnections() {
				conn.mu.Lock()
				stale := conn.lastSent.Before(threshold)
				conn.mu.Unlock()
				if stale {
					s.logger.Info("Removing stale SSE connection", "client_id", conn.clientID)
					s.RemoveConnection(conn)
				}
			}
		}
	}
}

// HandleSSEConnection serves GET /events for the requesting client. The
// current toast stack is sent immediately so a new tab starts in sync.
func (s *SSEManager) HandleSSEConnection(w http.ResponseWriter, r *http.Request) {
	ac, ok := application.FromContext(r.Context())
	if !ok {
		http.Error(w, "Unknown client", http.StatusBadRequest)
		return
	}

	conn := s.AddConnection(ac.ClientID, w)
	if conn == nil {
		http.Error(w, "Failed to establish SSE connection", http.StatusInternalServerError)
		return
	}
	defer s.RemoveConnection(conn)

	if err := s.sendToConnection(conn, "keepalive", "connected "+time.Now().Format(time.RFC3339)); err != nil {
		s.logger.ClientError("Failed to send initial keep-alive", err, ac.ClientID)
		return
	}
	s.BroadcastToasts(ac.ClientID)

	select {
	case <-r.Context().Done():
	case <-conn.done:
	}
}

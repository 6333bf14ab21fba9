package client

import (
	"encoding/json"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/muurk/fedivt/internal/logging"
)

// streamEvent is the wire shape of one streaming message
type streamEvent struct {
	Event   string `json:"event"`
	Payload string `json:"payload"`
}

// StreamListener watches the user streaming socket in the background and
// raises a flag when new posts arrive. It never touches timeline state;
// the session loop polls the flag between inputs and decides what to do.
// That keeps the core single threaded
type StreamListener struct {
	client *Client

	newPosts atomic.Bool
	done     chan struct{}
	once     sync.Once

	mu   sync.Mutex
	conn *websocket.Conn
}

// NewStreamListener creates a listener for the client's server. The
// client must already be logged in
func NewStreamListener(c *Client) *StreamListener {
	return &StreamListener{
		client: c,
		done:   make(chan struct{}),
	}
}

// Start begins listening in a background goroutine. Reconnects are paced
// with exponential backoff and never give up until Close
func (l *StreamListener) Start() {
	go l.run()
}

// HasNewPosts reports whether any new post arrived since the last Clear
func (l *StreamListener) HasNewPosts() bool {
	return l.newPosts.Load()
}

// Clear lowers the new-posts flag, typically after a refresh
func (l *StreamListener) Clear() {
	l.newPosts.Store(false)
}

// Close stops the listener, interrupting any blocked read
func (l *StreamListener) Close() {
	l.once.Do(func() {
		close(l.done)
		l.mu.Lock()
		if l.conn != nil {
			_ = l.conn.Close()
		}
		l.mu.Unlock()
	})
}

func (l *StreamListener) run() {
	policy := backoff.NewExponentialBackOff()
	policy.MaxInterval = 2 * time.Minute
	policy.MaxElapsedTime = 0

	for {
		select {
		case <-l.done:
			return
		default:
		}

		if err := l.listen(); err != nil {
			logging.Debug("Streaming socket closed", zap.Error(err))
		}

		select {
		case <-l.done:
			return
		case <-time.After(policy.NextBackOff()):
		}
	}
}

// streamURL builds the websocket endpoint for the user stream
func (l *StreamListener) streamURL() string {
	endpoint := l.client.Server
	endpoint = strings.Replace(endpoint, "https://", "wss://", 1)
	endpoint = strings.Replace(endpoint, "http://", "ws://", 1)

	query := url.Values{}
	query.Set("access_token", l.client.AccessToken())
	query.Set("stream", "user")
	return endpoint + "/api/v1/streaming?" + query.Encode()
}

func (l *StreamListener) listen() error {
	conn, _, err := websocket.DefaultDialer.Dial(l.streamURL(), nil)
	if err != nil {
		return err
	}

	l.mu.Lock()
	l.conn = conn
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		l.conn = nil
		l.mu.Unlock()
		_ = conn.Close()
	}()

	logging.LogConnection(l.client.Server, "streaming connected")

	for {
		select {
		case <-l.done:
			return nil
		default:
		}

		_, message, err := conn.ReadMessage()
		if err != nil {
			return err
		}

		var event streamEvent
		if err := json.Unmarshal(message, &event); err != nil {
			logging.Debug("Unparseable streaming event", zap.Error(err))
			continue
		}

		if event.Event == "update" {
			l.newPosts.Store(true)
		}
	}
}

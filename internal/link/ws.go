// Package link owns the single outbound connection to the host.
package link

import (
	"net"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	defaultHandshakeTimeout = 10 * time.Second
	writeTimeout            = 5 * time.Second
)

// WSDialer opens gorilla websocket connections to the host.
type WSDialer struct {
	HandshakeTimeout time.Duration
}

// Dial connects to url and starts a background read loop. The loop exists to
// process control frames and to surface remote closure through onClose; the
// handheld never consumes server payloads.
func (d *WSDialer) Dial(url string, onClose func(c Conn, err error)) (Conn, error) {
	timeout := d.HandshakeTimeout
	if timeout <= 0 {
		timeout = defaultHandshakeTimeout
	}
	dialer := websocket.Dialer{
		HandshakeTimeout: timeout,
		NetDialContext: (&net.Dialer{
			Timeout:   timeout,
			KeepAlive: 15 * time.Second,
		}).DialContext,
	}

	ws, _, err := dialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}

	c := &wsConn{ws: ws, done: make(chan struct{})}
	go c.readLoop(onClose)
	return c, nil
}

// wsConn wraps a websocket connection with a write lock.
type wsConn struct {
	mu   sync.Mutex
	ws   *websocket.Conn
	done chan struct{}
	once sync.Once
}

// Send writes one text message. Each send is exactly one wire message.
func (c *wsConn) Send(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.ws.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.ws.WriteMessage(websocket.TextMessage, data)
}

// Close shuts the connection down and suppresses the close callback.
func (c *wsConn) Close() error {
	var err error
	c.once.Do(func() {
		close(c.done)
		err = c.ws.Close()
	})
	return err
}

// readLoop consumes inbound frames and reports remote closure.
func (c *wsConn) readLoop(onClose func(c Conn, err error)) {
	for {
		if _, _, err := c.ws.ReadMessage(); err != nil {
			select {
			case <-c.done:
			default:
				if onClose != nil {
					onClose(c, err)
				}
			}
			return
		}
	}
}

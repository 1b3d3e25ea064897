// Package link owns the single outbound connection to the host.
package link

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"

	"github.com/velen24/pointcast/internal/protocol"
)

// ErrEmptyAddress indicates connect was requested without a host address.
var ErrEmptyAddress = errors.New("host address is empty")

// State describes the connection lifecycle.
type State int

const (
	// StateDisconnected means no connection exists.
	StateDisconnected State = iota
	// StateConnecting means a dial is in progress.
	StateConnecting
	// StateOpen means the connection is established and writable.
	StateOpen
)

// String returns a readable state name.
func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateOpen:
		return "open"
	default:
		return "disconnected"
	}
}

// Conn is a single established transport connection.
type Conn interface {
	Send(data []byte) error
	Close() error
}

// Dialer opens a connection to a websocket URL. onClose fires at most once,
// with the dropped connection, when it closes for any reason other than a
// local Close call.
type Dialer interface {
	Dial(url string, onClose func(c Conn, err error)) (Conn, error)
}

// Notifier receives user-visible connection messages.
type Notifier func(msg string)

// Manager owns at most one live connection and its lifecycle state. All
// recovery is operator-driven; the manager never reconnects on its own.
type Manager struct {
	mu      sync.Mutex
	dialer  Dialer
	port    int
	state   State
	conn    Conn
	host    string
	notify  Notifier
	onState func(State)
}

// NewManager returns a manager dialing through dialer on the fixed
// application port. notify and onState may be nil.
func NewManager(dialer Dialer, notify Notifier, onState func(State)) *Manager {
	return &Manager{
		dialer:  dialer,
		port:    protocol.DefaultPort,
		notify:  notify,
		onState: onState,
	}
}

// State returns the current connection state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Connect opens a connection to host on the fixed application port. When a
// connection already exists the call acts as a disconnect request instead,
// so the connect control doubles as a disconnect control.
func (m *Manager) Connect(host string) error {
	m.mu.Lock()
	if m.state != StateDisconnected {
		m.mu.Unlock()
		m.Disconnect()
		return nil
	}
	host = strings.TrimSpace(host)
	if host == "" {
		m.mu.Unlock()
		m.sendNotice("no host address set")
		return ErrEmptyAddress
	}
	m.host = host
	m.state = StateConnecting
	m.mu.Unlock()
	m.emitState(StateConnecting)

	url := "ws://" + net.JoinHostPort(host, strconv.Itoa(m.port))
	conn, err := m.dialer.Dial(url, m.handleDrop)
	if err != nil {
		m.mu.Lock()
		m.state = StateDisconnected
		m.mu.Unlock()
		m.emitState(StateDisconnected)
		m.sendNotice(fmt.Sprintf("could not connect to %s", host))
		return fmt.Errorf("connect %s: %w", host, err)
	}

	m.mu.Lock()
	if m.state != StateConnecting {
		// Disconnected while the dial was in flight.
		m.mu.Unlock()
		_ = conn.Close()
		return nil
	}
	m.conn = conn
	m.state = StateOpen
	m.mu.Unlock()
	m.emitState(StateOpen)
	return nil
}

// Disconnect closes the live connection if one exists and is a no-op
// otherwise.
func (m *Manager) Disconnect() {
	m.mu.Lock()
	conn := m.conn
	m.conn = nil
	changed := m.state != StateDisconnected
	m.state = StateDisconnected
	m.mu.Unlock()

	if conn != nil {
		_ = conn.Close()
	}
	if changed {
		m.emitState(StateDisconnected)
	}
}

// Dispatch serializes the command and sends it when the connection is open.
// While not open the command is silently dropped: gesture streams may race
// with connection teardown, so this is not an error. Dispatch never queues
// or retries.
func (m *Manager) Dispatch(cmd protocol.Command) {
	m.mu.Lock()
	conn := m.conn
	open := m.state == StateOpen
	m.mu.Unlock()
	if !open || conn == nil {
		return
	}

	data, err := cmd.Encode()
	if err != nil {
		return
	}
	if err := conn.Send(data); err != nil {
		m.handleDrop(conn, err)
	}
}

// handleDrop reacts to a transport failure on a specific connection. Drops
// reported for a connection the manager no longer owns are ignored.
func (m *Manager) handleDrop(c Conn, err error) {
	m.mu.Lock()
	if m.conn != c {
		m.mu.Unlock()
		return
	}
	m.conn = nil
	m.state = StateDisconnected
	host := m.host
	m.mu.Unlock()

	_ = c.Close()
	m.emitState(StateDisconnected)
	if err != nil {
		m.sendNotice(fmt.Sprintf("connection to %s lost", host))
	}
}

// sendNotice forwards a user-visible message to the notifier.
func (m *Manager) sendNotice(msg string) {
	if m.notify != nil {
		m.notify(msg)
	}
}

// emitState forwards a state transition to the state callback.
func (m *Manager) emitState(s State) {
	if m.onState != nil {
		m.onState(s)
	}
}

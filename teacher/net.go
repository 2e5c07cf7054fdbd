package teacher

import (
	"bufio"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/katalvlaran/lstar/word"
)

// Sentinel errors for the TCP adapter.
var (
	// ErrNotConnected indicates Reset or Step before a successful Start.
	ErrNotConnected = errors.New("teacher: net target is not connected")

	// ErrBadOption indicates an invalid NetOption value.
	ErrBadOption = errors.New("teacher: invalid net option")
)

// resetLine is the out-of-band command that returns the remote target
// to its initial state.
const resetLine = "RESET"

// NetTarget drives a remote target over a TCP socket with a line
// protocol: each input letter is written as its rendering followed by
// '\n'; the peer answers one line, decoded as a string letter. The
// literal line "RESET" asks the peer to return to its initial state.
// The framing is this adapter's convention only — the learning core
// imposes nothing on transports.
type NetTarget struct {
	addr        string
	dialTimeout time.Duration
	ioTimeout   time.Duration

	conn net.Conn
	r    *bufio.Reader

	optErr error
}

// NetOption configures a NetTarget.
type NetOption func(*NetTarget)

// WithDialTimeout bounds connection establishment. Must be positive.
func WithDialTimeout(d time.Duration) NetOption {
	return func(t *NetTarget) {
		if d <= 0 {
			t.optErr = fmt.Errorf("%w: dial timeout %v", ErrBadOption, d)
			return
		}
		t.dialTimeout = d
	}
}

// WithIOTimeout bounds each write/read exchange. Must be positive.
// A timed-out exchange surfaces as a transport failure to the session.
func WithIOTimeout(d time.Duration) NetOption {
	return func(t *NetTarget) {
		if d <= 0 {
			t.optErr = fmt.Errorf("%w: io timeout %v", ErrBadOption, d)
			return
		}
		t.ioTimeout = d
	}
}

// NewNetTarget prepares a TCP target for addr ("host:port"). The
// connection is opened by Start and closed by Stop.
func NewNetTarget(addr string, opts ...NetOption) (*NetTarget, error) {
	t := &NetTarget{
		addr:        addr,
		dialTimeout: 10 * time.Second,
		ioTimeout:   30 * time.Second,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.optErr != nil {
		return nil, t.optErr
	}
	return t, nil
}

// Start dials the remote target.
func (t *NetTarget) Start() error {
	conn, err := net.DialTimeout("tcp", t.addr, t.dialTimeout)
	if err != nil {
		return fmt.Errorf("teacher: dial %s: %w", t.addr, err)
	}
	t.conn = conn
	t.r = bufio.NewReader(conn)
	return nil
}

// Stop closes the connection. Safe to call when never started.
func (t *NetTarget) Stop() error {
	if t.conn == nil {
		return nil
	}
	err := t.conn.Close()
	t.conn = nil
	t.r = nil
	return err
}

// Reset asks the peer to return to its initial state and discards the
// acknowledgement line.
func (t *NetTarget) Reset() error {
	_, err := t.exchange(resetLine)
	return err
}

// Step sends one letter and decodes the peer's one-line answer.
func (t *NetTarget) Step(in word.Letter) (word.Letter, error) {
	line, err := t.exchange(in.String())
	if err != nil {
		return word.Letter{}, err
	}
	return word.String(line), nil
}

// exchange writes one line and reads one line, under the io timeout.
func (t *NetTarget) exchange(out string) (string, error) {
	if t.conn == nil {
		return "", ErrNotConnected
	}
	if err := t.conn.SetDeadline(time.Now().Add(t.ioTimeout)); err != nil {
		return "", fmt.Errorf("teacher: set deadline: %w", err)
	}
	if _, err := t.conn.Write([]byte(out + "\n")); err != nil {
		return "", fmt.Errorf("teacher: write %q: %w", out, err)
	}
	line, err := t.r.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("teacher: read response to %q: %w", out, err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

package session

import (
	"context"

	q "github.com/quic-go/quic-go"

	"github.com/TheusHen/mimc52/mimc52/identity"
	"github.com/TheusHen/mimc52/mimc52/protocol"
)

// Session is an authenticated connection between two addresses.
// QUIC provides encryption; identity is bound by the signed HELLO exchange.
type Session struct {
	conn          q.Connection
	control       q.Stream
	controlID     q.StreamID
	localAddress  identity.Address
	remoteAddress identity.Address
	caps          map[string]string
	pass          []byte
	resumed       bool
}

func (s *Session) Connection() q.Connection { return s.conn }

func (s *Session) LocalAddress() identity.Address { return s.localAddress }

func (s *Session) RemoteAddress() identity.Address { return s.remoteAddress }

func (s *Session) RemoteCapabilities() map[string]string {
	out := map[string]string{}
	for k, v := range s.caps {
		out[k] = v
	}
	return out
}

// Pass is the reconnect pass handed out during the handshake: received on
// the client side, issued on the server side. Nil when none was issued.
func (s *Session) Pass() []byte { return append([]byte(nil), s.pass...) }

// Resumed reports whether the client skipped the puzzle by presenting a
// valid pass.
func (s *Session) Resumed() bool { return s.resumed }

// OpenStream opens an application data stream.
func (s *Session) OpenStream(ctx context.Context) (q.Stream, error) {
	return s.conn.OpenStreamSync(ctx)
}

// AcceptStream accepts an application data stream, skipping the control stream.
func (s *Session) AcceptStream(ctx context.Context) (q.Stream, error) {
	for {
		st, err := s.conn.AcceptStream(ctx)
		if err != nil {
			return nil, err
		}
		if st.StreamID() == s.controlID {
			_ = st.Close()
			continue
		}
		return st, nil
	}
}

// Close announces the end of the session on the control stream, then closes
// the connection.
func (s *Session) Close() error {
	_ = protocol.WriteFrame(s.control, protocol.Frame{Type: protocol.MessageTypeClose})
	_ = s.control.Close()
	return s.conn.CloseWithError(0, "")
}

func (s *Session) CloseWithError(code q.ApplicationErrorCode, msg string) error {
	return s.conn.CloseWithError(code, msg)
}

package session

import (
	"context"
	"errors"
	"sync"
	"time"

	q "github.com/quic-go/quic-go"
	"go.uber.org/zap"

	"github.com/TheusHen/mimc52/mimc52/identity"
	"github.com/TheusHen/mimc52/mimc52/transport/quic"
)

var ErrNotListening = errors.New("session: peer is not listening")

// rejectLinger is how long a failed server handshake waits for the client
// to hang up, so a REJECT is not cut off by the connection close.
const rejectLinger = time.Second

// Peer combines transport and handshake. On the dialing side it remembers
// the pass each server handed out, so later dials to the same server skip
// the puzzle while the pass is valid.
type Peer struct {
	opts      HandshakeOptions
	transport quic.Options
	listener  *quic.Listener

	mu     sync.Mutex
	passes map[string][]byte
}

func NewPeer(opts HandshakeOptions, transport quic.Options) *Peer {
	capsCopy := map[string]string{}
	for k, v := range opts.Capabilities {
		capsCopy[k] = v
	}
	opts.Capabilities = capsCopy
	return &Peer{opts: opts, transport: transport, passes: map[string][]byte{}}
}

func (p *Peer) Address() identity.Address { return p.opts.Identity.Address }

func (p *Peer) Listen(addr string) error {
	ln, err := quic.Listen(addr, p.transport)
	if err != nil {
		return err
	}
	p.listener = ln
	return nil
}

func (p *Peer) Close() error {
	if p.listener == nil {
		return nil
	}
	return p.listener.Close()
}

func (p *Peer) ListenAddr() string {
	if p.listener == nil {
		return ""
	}
	return p.listener.AddrString()
}

// Accept waits for the next connection and runs the server handshake on
// it. A connection that fails the handshake is closed and its error
// returned; the listener stays usable.
func (p *Peer) Accept(ctx context.Context) (*Session, error) {
	if p.listener == nil {
		return nil, ErrNotListening
	}
	conn, err := p.listener.Accept(ctx)
	if err != nil {
		return nil, err
	}
	return p.handshake(ctx, conn)
}

// Serve accepts connections until ctx ends or the listener fails, running
// each handshake on its own goroutine so slow puzzle solvers do not hold up
// other clients. handle is called for every completed session.
func (p *Peer) Serve(ctx context.Context, handle func(*Session)) error {
	if p.listener == nil {
		return ErrNotListening
	}
	log := p.opts.logger()
	for {
		conn, err := p.listener.Accept(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		go func() {
			sess, err := p.handshake(ctx, conn)
			if err != nil {
				log.Info("handshake failed",
					zap.Stringer("from", conn.RemoteAddr()),
					zap.Error(err))
				return
			}
			handle(sess)
		}()
	}
}

func (p *Peer) handshake(ctx context.Context, conn q.Connection) (*Session, error) {
	sess, err := HandshakeServer(ctx, conn, p.opts)
	if err != nil {
		select {
		case <-conn.Context().Done():
		case <-time.After(rejectLinger):
		}
		_ = conn.CloseWithError(1, "handshake failed")
		return nil, err
	}
	return sess, nil
}

// Dial connects to addr. expect, when not nil, pins the server address.
func (p *Peer) Dial(ctx context.Context, addr string, expect identity.Address) (*Session, error) {
	conn, err := quic.Dial(ctx, addr, p.transport)
	if err != nil {
		return nil, err
	}

	opts := p.opts
	opts.ExpectAddress = expect
	p.mu.Lock()
	opts.Pass = p.passes[addr]
	p.mu.Unlock()

	sess, err := HandshakeClient(ctx, conn, opts)
	if err != nil {
		_ = conn.CloseWithError(1, "handshake failed")
		return nil, err
	}

	p.mu.Lock()
	if len(sess.pass) > 0 {
		p.passes[addr] = sess.pass
	} else {
		delete(p.passes, addr)
	}
	p.mu.Unlock()

	p.opts.logger().Debug("dialed",
		zap.String("addr", addr),
		zap.Stringer("remote", sess.RemoteAddress()),
		zap.Bool("resumed", sess.Resumed()))
	return sess, nil
}

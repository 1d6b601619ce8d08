package session

import (
	"context"
	"errors"
	"time"

	pkgerrors "github.com/pkg/errors"
	q "github.com/quic-go/quic-go"
	"go.uber.org/zap"

	"github.com/TheusHen/mimc52/mimc52/identity"
	"github.com/TheusHen/mimc52/mimc52/protocol"
	"github.com/TheusHen/mimc52/mimc52/puzzle"
)

var (
	ErrHandshakeExpectedHello = errors.New("session: handshake expected HELLO")
	ErrUnexpectedMessage      = errors.New("session: unexpected message")
	ErrRejected               = errors.New("session: rejected by peer")
	ErrPuzzleTooHard          = errors.New("session: puzzle exceeds configured limit")
	ErrUnexpectedPeer         = errors.New("session: peer address does not match")
)

type HandshakeOptions struct {
	Identity     identity.Identity
	Capabilities map[string]string

	// Issuer gates incoming clients behind a puzzle. Nil accepts every
	// client with a valid HELLO.
	Issuer *puzzle.Issuer
	// Passes issues reconnect passes on the server side and accepts the
	// ones clients present. Nil disables passes.
	Passes *puzzle.PassKeeper
	// MinIdentityRounds is the least delay a remote identity must have paid.
	MinIdentityRounds uint64
	// MaxIdentityRounds is the most delay rounds of a remote identity proof
	// this side verifies. Zero means identity.DefaultMaxRounds.
	MaxIdentityRounds uint64

	// Pass is presented by a client to skip the puzzle.
	Pass []byte
	// MaxPuzzleRounds makes a client refuse harder puzzles. Zero means no limit.
	MaxPuzzleRounds uint64
	// ExpectAddress makes a client fail unless the server has this address.
	// The nil address accepts any server.
	ExpectAddress identity.Address

	Logger *zap.Logger
}

func (o HandshakeOptions) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o HandshakeOptions) checkRounds(h protocol.Hello) error {
	max := o.MaxIdentityRounds
	if max == 0 {
		max = identity.DefaultMaxRounds
	}
	return h.CheckRounds(o.MinIdentityRounds, max)
}

func signedHello(opts HandshakeOptions, pass []byte) (protocol.Hello, error) {
	hello, err := protocol.NewHello(opts.Identity, opts.Capabilities)
	if err != nil {
		return protocol.Hello{}, err
	}
	hello.Pass = pass
	if err := hello.Sign(opts.Identity); err != nil {
		return protocol.Hello{}, err
	}
	return hello, nil
}

func writeMessage(st q.Stream, t protocol.MessageType, payload []byte, err error) error {
	if err != nil {
		return err
	}
	return protocol.WriteFrame(st, protocol.Frame{Type: t, Payload: payload})
}

// reject tells the client why it is turned away and returns cause.
func reject(st q.Stream, cause error) error {
	payload, err := protocol.EncodeReject(protocol.Reject{Reason: cause.Error()})
	if err == nil {
		_ = protocol.WriteFrame(st, protocol.Frame{Type: protocol.MessageTypeReject, Payload: payload})
	}
	_ = st.Close()
	return cause
}

func readHello(st q.Stream) (protocol.Hello, error) {
	frame, err := protocol.ReadFrame(st)
	if err != nil {
		return protocol.Hello{}, err
	}
	if frame.Type != protocol.MessageTypeHello {
		return protocol.Hello{}, ErrHandshakeExpectedHello
	}
	return protocol.DecodeHello(frame.Payload)
}

// HandshakeClient performs the session handshake as a client. The client
// opens the control stream, sends its HELLO and solves a puzzle if the
// server asks for one.
func HandshakeClient(ctx context.Context, conn q.Connection, opts HandshakeOptions) (*Session, error) {
	log := opts.logger()
	control, err := conn.OpenStreamSync(ctx)
	if err != nil {
		return nil, err
	}

	hello, err := signedHello(opts, opts.Pass)
	if err != nil {
		return nil, err
	}
	payload, err := protocol.EncodeHello(hello)
	if err := writeMessage(control, protocol.MessageTypeHello, payload, err); err != nil {
		return nil, err
	}

	solved := false
	for {
		frame, err := protocol.ReadFrame(control)
		if err != nil {
			return nil, err
		}
		switch frame.Type {
		case protocol.MessageTypePuzzle:
			if solved {
				return nil, pkgerrors.Wrap(ErrUnexpectedMessage, "second PUZZLE")
			}
			p, err := protocol.DecodePuzzle(frame.Payload)
			if err != nil {
				return nil, err
			}
			if opts.MaxPuzzleRounds != 0 && p.Rounds > opts.MaxPuzzleRounds {
				return nil, pkgerrors.Wrapf(ErrPuzzleTooHard, "%d rounds", p.Rounds)
			}
			log.Debug("solving puzzle", zap.Uint64("rounds", p.Rounds), zap.Stringer("challenge", p.Challenge))
			sol, err := puzzle.Solve(ctx, p)
			if err != nil {
				return nil, err
			}
			payload, err := protocol.EncodeSolution(sol)
			if err := writeMessage(control, protocol.MessageTypeSolution, payload, err); err != nil {
				return nil, err
			}
			solved = true

		case protocol.MessageTypeWelcome:
			w, err := protocol.DecodeWelcome(frame.Payload)
			if err != nil {
				return nil, err
			}
			if err := opts.checkRounds(w.Hello); err != nil {
				return nil, err
			}
			if err := w.Hello.Verify(); err != nil {
				return nil, err
			}
			if !opts.ExpectAddress.IsNil() && w.Hello.Address != opts.ExpectAddress {
				return nil, pkgerrors.Wrapf(ErrUnexpectedPeer, "got %s", w.Hello.Address)
			}
			log.Debug("handshake complete",
				zap.Stringer("remote", w.Hello.Address),
				zap.Bool("solved_puzzle", solved))
			return &Session{
				conn:          conn,
				control:       control,
				controlID:     control.StreamID(),
				localAddress:  opts.Identity.Address,
				remoteAddress: w.Hello.Address,
				caps:          w.Hello.Capabilities,
				pass:          w.Pass,
				resumed:       !solved && len(opts.Pass) > 0,
			}, nil

		case protocol.MessageTypeReject:
			r, err := protocol.DecodeReject(frame.Payload)
			if err != nil {
				return nil, ErrRejected
			}
			return nil, pkgerrors.Wrap(ErrRejected, r.Reason)

		default:
			return nil, pkgerrors.Wrap(ErrUnexpectedMessage, frame.Type.String())
		}
	}
}

// HandshakeServer performs the session handshake as a server. The server
// accepts the control stream opened by the client. Clients without a valid
// pass must solve a puzzle when an Issuer is configured.
func HandshakeServer(ctx context.Context, conn q.Connection, opts HandshakeOptions) (*Session, error) {
	log := opts.logger()
	control, err := conn.AcceptStream(ctx)
	if err != nil {
		return nil, err
	}

	remote, err := readHello(control)
	if err != nil {
		return nil, err
	}
	if err := opts.checkRounds(remote); err != nil {
		return nil, reject(control, err)
	}
	if err := remote.Verify(); err != nil {
		return nil, reject(control, err)
	}
	log = log.With(zap.Stringer("remote", remote.Address))

	resumed := false
	if opts.Passes != nil && len(remote.Pass) > 0 {
		if _, err := opts.Passes.Open(remote.Pass, remote.Address); err != nil {
			log.Debug("pass refused", zap.Error(err))
		} else {
			resumed = true
		}
	}

	if !resumed && opts.Issuer != nil {
		if err := challengeClient(control, remote.Address, opts.Issuer, log); err != nil {
			return nil, err
		}
	}

	var pass []byte
	if opts.Passes != nil {
		pass, err = opts.Passes.Issue(remote.Address)
		if err != nil {
			return nil, err
		}
	}

	local, err := signedHello(opts, nil)
	if err != nil {
		return nil, err
	}
	payload, err := protocol.EncodeWelcome(protocol.Welcome{Hello: local, Pass: pass})
	if err := writeMessage(control, protocol.MessageTypeWelcome, payload, err); err != nil {
		return nil, err
	}
	log.Debug("handshake complete", zap.Bool("resumed", resumed))

	return &Session{
		conn:          conn,
		control:       control,
		controlID:     control.StreamID(),
		localAddress:  opts.Identity.Address,
		remoteAddress: remote.Address,
		caps:          remote.Capabilities,
		pass:          pass,
		resumed:       resumed,
	}, nil
}

func challengeClient(control q.Stream, addr identity.Address, issuer *puzzle.Issuer, log *zap.Logger) error {
	p, err := issuer.Issue(addr)
	if err != nil {
		return err
	}
	payload, err := protocol.EncodePuzzle(p)
	if err := writeMessage(control, protocol.MessageTypePuzzle, payload, err); err != nil {
		return err
	}
	log.Debug("puzzle issued", zap.Uint64("rounds", p.Rounds))

	ttl := time.Duration(p.ExpiresAt-p.IssuedAt+1) * time.Second
	if err := control.SetReadDeadline(time.Now().Add(ttl)); err != nil {
		return err
	}
	frame, err := protocol.ReadFrame(control)
	if err != nil {
		return err
	}
	if err := control.SetReadDeadline(time.Time{}); err != nil {
		return err
	}
	if frame.Type != protocol.MessageTypeSolution {
		return reject(control, pkgerrors.Wrap(ErrUnexpectedMessage, frame.Type.String()))
	}
	sol, err := protocol.DecodeSolution(frame.Payload)
	if err != nil {
		return reject(control, err)
	}
	if err := issuer.Check(addr, sol); err != nil {
		log.Info("puzzle check failed", zap.Error(err))
		return reject(control, err)
	}
	return nil
}

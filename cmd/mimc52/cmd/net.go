package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/TheusHen/mimc52/mimc52/config"
	"github.com/TheusHen/mimc52/mimc52/identity"
	"github.com/TheusHen/mimc52/mimc52/puzzle"
	"github.com/TheusHen/mimc52/mimc52/session"
	"github.com/TheusHen/mimc52/mimc52/store"
	"github.com/TheusHen/mimc52/mimc52/store/memory"
	"github.com/TheusHen/mimc52/mimc52/store/pebble"
	"github.com/TheusHen/mimc52/mimc52/transport/quic"
)

func transportOptions(cfg *config.Config) quic.Options {
	return quic.Options{
		HandshakeIdleTimeout: cfg.Transport.HandshakeTimeout,
		MaxIdleTimeout:       cfg.Transport.IdleTimeout,
	}
}

func openSpentSet(cfg *config.Config) (store.SpentSet, error) {
	if cfg.Puzzle.StorePath == "" {
		return memory.New(), nil
	}
	return pebble.Open(cfg.Puzzle.StorePath)
}

// echo copies every stream of a session back to its sender.
func echo(ctx context.Context, sess *session.Session, log *zap.Logger) {
	for {
		st, err := sess.AcceptStream(ctx)
		if err != nil {
			log.Debug("session ended", zap.Error(err))
			return
		}
		go func() {
			n, err := io.Copy(st, st)
			if err != nil {
				log.Debug("echo", zap.Error(err))
			}
			_ = st.Close()
			log.Debug("echoed stream", zap.Int64("bytes", n))
		}()
	}
}

func newServeCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "serve",
		Short: "Accept puzzle-gated sessions and echo their streams",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			if listen, _ := c.Flags().GetString("listen"); listen != "" {
				cfg.Listen = listen
			}
			log, err := cfg.Logger()
			if err != nil {
				return err
			}
			defer log.Sync()

			id, err := loadOrMintIdentity(ctx, cfg, log)
			if err != nil {
				return err
			}
			secret, err := cfg.Puzzle.SecretBytes()
			if err != nil {
				return err
			}
			if cfg.Puzzle.Secret == "" {
				log.Warn("no puzzle secret configured, passes will not survive a restart")
			}

			spent, err := openSpentSet(cfg)
			if err != nil {
				return err
			}
			defer spent.Close()

			reg := prometheus.NewRegistry()
			metrics, err := puzzle.NewMetrics(reg)
			if err != nil {
				return err
			}
			issuer, err := puzzle.NewIssuer(puzzle.IssuerConfig{
				Secret:  secret,
				Rounds:  cfg.Puzzle.Rounds,
				TTL:     cfg.Puzzle.TTL,
				Spent:   spent,
				Metrics: metrics,
				Logger:  log,
			})
			if err != nil {
				return err
			}
			passes, err := puzzle.NewPassKeeper(puzzle.PassConfig{
				Secret:   secret,
				Lifetime: cfg.Puzzle.PassLifetime,
				Metrics:  metrics,
			})
			if err != nil {
				return err
			}

			if addr, _ := c.Flags().GetString("metrics"); addr != "" {
				srv := &http.Server{Addr: addr, Handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{})}
				go func() {
					if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						log.Error("metrics server", zap.Error(err))
					}
				}()
				defer srv.Close()
			}

			peer := session.NewPeer(session.HandshakeOptions{
				Identity:          id,
				Capabilities:      map[string]string{"service": "echo"},
				Issuer:            issuer,
				Passes:            passes,
				MinIdentityRounds: cfg.Identity.MinRounds,
				MaxIdentityRounds: cfg.Identity.MaxRounds,
				Logger:            log,
			}, transportOptions(cfg))
			if err := peer.Listen(cfg.Listen); err != nil {
				return err
			}
			defer peer.Close()

			go issuer.PruneLoop(ctx, cfg.Puzzle.PruneInterval)

			log.Info("serving",
				zap.String("listen", peer.ListenAddr()),
				zap.Stringer("address", id.Address),
				zap.Uint64("puzzle_rounds", issuer.Rounds()))
			fmt.Fprintf(c.OutOrStdout(), "%s listening on %s\n", id.Address, peer.ListenAddr())

			return peer.Serve(ctx, func(sess *session.Session) {
				sl := log.With(zap.Stringer("remote", sess.RemoteAddress()))
				sl.Info("session established", zap.Bool("resumed", sess.Resumed()))
				echo(ctx, sess, sl)
			})
		},
	}
	c.Flags().String("listen", "", "override the configured listen address")
	c.Flags().String("metrics", "", "serve Prometheus metrics on this address")
	return c
}

func newDialCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "dial <host:port>",
		Short: "Connect to a server, solving its puzzle if asked",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			log, err := cfg.Logger()
			if err != nil {
				return err
			}
			defer log.Sync()

			var expect identity.Address
			if s, _ := c.Flags().GetString("expect"); s != "" {
				if expect, err = identity.ParseAddress(s); err != nil {
					return err
				}
			}
			maxRounds, _ := c.Flags().GetUint64("max-rounds")
			message, _ := c.Flags().GetString("message")
			times, _ := c.Flags().GetInt("times")

			id, err := loadOrMintIdentity(ctx, cfg, log)
			if err != nil {
				return err
			}
			peer := session.NewPeer(session.HandshakeOptions{
				Identity:          id,
				MinIdentityRounds: cfg.Identity.MinRounds,
				MaxIdentityRounds: cfg.Identity.MaxRounds,
				MaxPuzzleRounds:   maxRounds,
				Logger:            log,
			}, transportOptions(cfg))

			out := c.OutOrStdout()
			for i := 0; i < times; i++ {
				sess, err := peer.Dial(ctx, args[0], expect)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "connected to %s (resumed %t)\n", sess.RemoteAddress(), sess.Resumed())
				if message != "" {
					reply, err := roundTrip(ctx, sess, message)
					if err != nil {
						_ = sess.Close()
						return err
					}
					fmt.Fprintf(out, "reply: %s\n", reply)
				}
				if err := sess.Close(); err != nil {
					log.Debug("close", zap.Error(err))
				}
			}
			return nil
		},
	}
	c.Flags().String("expect", "", "fail unless the server has this address")
	c.Flags().Uint64("max-rounds", 0, "refuse puzzles harder than this (0 = no limit)")
	c.Flags().String("message", "", "send this on a stream and print the reply")
	c.Flags().Int("times", 1, "connect this many times, reusing passes")
	return c
}

func roundTrip(ctx context.Context, sess *session.Session, message string) (string, error) {
	st, err := sess.OpenStream(ctx)
	if err != nil {
		return "", err
	}
	if _, err := io.WriteString(st, message); err != nil {
		return "", err
	}
	if err := st.Close(); err != nil {
		return "", err
	}
	reply, err := io.ReadAll(st)
	if err != nil {
		return "", err
	}
	return string(reply), nil
}

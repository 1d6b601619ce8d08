// Package cmd implements the mimc52 command line.
package cmd

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/sha3"

	"github.com/TheusHen/mimc52/mimc52"
)

var (
	errChallengeSource = errors.New("give either a 64 hex character challenge or --seed")
	errInvalidProof    = errors.New("proof does not verify")
)

// NewRootCommand builds the full command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "mimc52",
		Short:         "Sequential delay proofs over a 52-bit field",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "mimc52.yml", "config file")

	root.AddCommand(
		newDelayCmd(),
		newVerifyCmd(),
		newInspectCmd(),
		newBenchCmd(),
		newIdentityCmd(),
		newBatchCmd(),
		newServeCmd(),
		newDialCmd(),
	)
	return root
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

// addChallengeFlags registers --seed and --rounds, shared by the commands
// that take a single challenge.
func addChallengeFlags(c *cobra.Command, rounds uint64) {
	c.Flags().String("seed", "", "derive the challenge as SHA3-256 of this string")
	c.Flags().Uint64("rounds", rounds, "delay rounds")
}

// challengeFrom reads the challenge from a positional hex argument or from
// --seed, never both.
func challengeFrom(c *cobra.Command, args []string) ([mimc52.ChallengeSize]byte, error) {
	seed, _ := c.Flags().GetString("seed")
	seedSet := c.Flags().Changed("seed")
	switch {
	case len(args) == 1 && !seedSet:
		return parseChallenge(args[0])
	case len(args) == 0 && seedSet:
		return sha3.Sum256([]byte(seed)), nil
	default:
		return [mimc52.ChallengeSize]byte{}, errChallengeSource
	}
}

func parseChallenge(s string) ([mimc52.ChallengeSize]byte, error) {
	var c [mimc52.ChallengeSize]byte
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil || len(b) != mimc52.ChallengeSize {
		return c, errChallengeSource
	}
	copy(c[:], b)
	return c, nil
}

func parseProof(s string) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(s), "0x"), 16, 64)
	if err != nil {
		return 0, errors.Wrap(err, "proof")
	}
	return v, nil
}

func formatProof(p uint64) string {
	return fmt.Sprintf("0x%013x", p)
}

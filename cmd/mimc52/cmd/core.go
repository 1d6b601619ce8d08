package cmd

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/sha3"

	"github.com/TheusHen/mimc52/mimc52"
	"github.com/TheusHen/mimc52/mimc52/field"
)

const defaultRounds = 100000

func newDelayCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "delay [challenge]",
		Short: "Compute a delay proof",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			challenge, err := challengeFrom(c, args)
			if err != nil {
				return err
			}
			rounds, _ := c.Flags().GetUint64("rounds")

			start := time.Now()
			proof, err := mimc52.DelayContext(c.Context(), challenge, rounds)
			if err != nil {
				return err
			}
			out := c.OutOrStdout()
			fmt.Fprintf(out, "challenge %s\n", hex.EncodeToString(challenge[:]))
			fmt.Fprintf(out, "rounds    %d\n", rounds)
			fmt.Fprintf(out, "proof     %s\n", formatProof(proof))
			fmt.Fprintf(out, "elapsed   %s\n", time.Since(start).Round(time.Microsecond))
			return nil
		},
	}
	addChallengeFlags(c, defaultRounds)
	return c
}

func newVerifyCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "verify [challenge]",
		Short: "Check a delay proof",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			challenge, err := challengeFrom(c, args)
			if err != nil {
				return err
			}
			rounds, _ := c.Flags().GetUint64("rounds")
			proofHex, _ := c.Flags().GetString("proof")
			proof, err := parseProof(proofHex)
			if err != nil {
				return err
			}

			start := time.Now()
			ok := mimc52.Verify(challenge, rounds, proof)
			elapsed := time.Since(start).Round(time.Microsecond)
			if !ok {
				return errInvalidProof
			}
			fmt.Fprintf(c.OutOrStdout(), "valid (%s)\n", elapsed)
			return nil
		},
	}
	addChallengeFlags(c, defaultRounds)
	c.Flags().String("proof", "", "proof to check, hex")
	_ = c.MarkFlagRequired("proof")
	return c
}

func newInspectCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "inspect [challenge]",
		Short: "Show the modulus and exponent a challenge selects",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			challenge, err := challengeFrom(c, args)
			if err != nil {
				return err
			}
			p := mimc52.Prime(challenge)
			out := c.OutOrStdout()
			fmt.Fprintf(out, "challenge %s\n", hex.EncodeToString(challenge[:]))
			fmt.Fprintf(out, "prime     %#x (%d)\n", p, p)
			fmt.Fprintf(out, "exponent  %#x\n", (2*p-1)/3)
			fmt.Fprintf(out, "mulmod    %s\n", field.Strategy)
			return nil
		},
	}
	c.Flags().String("seed", "", "derive the challenge as SHA3-256 of this string")
	return c
}

func newBenchCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "bench",
		Short: "Measure delay and verify speed and suggest rounds for a target delay",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			rounds, _ := c.Flags().GetUint64("rounds")
			target, _ := c.Flags().GetDuration("target")
			if rounds == 0 {
				return errors.New("rounds must be positive")
			}
			challenge := sha3.Sum256([]byte(time.Now().String()))

			start := time.Now()
			proof, err := mimc52.DelayContext(c.Context(), challenge, rounds)
			if err != nil {
				return err
			}
			delay := time.Since(start)

			start = time.Now()
			ok := mimc52.Verify(challenge, rounds, proof)
			verify := time.Since(start)
			if !ok {
				return errInvalidProof
			}

			perSecond := float64(rounds) / delay.Seconds()
			out := c.OutOrStdout()
			fmt.Fprintf(out, "mulmod        %s\n", field.Strategy)
			fmt.Fprintf(out, "rounds        %d\n", rounds)
			fmt.Fprintf(out, "delay         %s (%.0f rounds/s)\n", delay.Round(time.Microsecond), perSecond)
			fmt.Fprintf(out, "verify        %s\n", verify.Round(time.Microsecond))
			if verify > 0 {
				fmt.Fprintf(out, "ratio         %.1fx\n", float64(delay)/float64(verify))
			}
			if target > 0 {
				fmt.Fprintf(out, "rounds for %s: %d\n", target, uint64(perSecond*target.Seconds()))
			}
			return nil
		},
	}
	c.Flags().Uint64("rounds", 20000, "rounds to time")
	c.Flags().Duration("target", time.Second, "delay to calibrate rounds for")
	return c
}

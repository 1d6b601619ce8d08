package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/sha3"

	"github.com/TheusHen/mimc52/mimc52"
	"github.com/TheusHen/mimc52/mimc52/batch"
)

func readChallenges(path string) ([][mimc52.ChallengeSize]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out [][mimc52.ChallengeSize]byte
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		c, err := parseChallenge(text)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d", path, line)
		}
		out = append(out, c)
	}
	return out, sc.Err()
}

func newBatchCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "batch",
		Short: "Prove or verify many challenges through LZ4 archives",
	}

	prove := &cobra.Command{
		Use:   "prove <archive>",
		Short: "Prove challenges and write them to an archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			rounds, _ := c.Flags().GetUint64("rounds")
			workers, _ := c.Flags().GetInt("workers")
			in, _ := c.Flags().GetString("in")
			seed, _ := c.Flags().GetString("seed")
			count, _ := c.Flags().GetInt("count")
			best, _ := c.Flags().GetBool("best")

			var challenges [][mimc52.ChallengeSize]byte
			switch {
			case in != "":
				var err error
				if challenges, err = readChallenges(in); err != nil {
					return err
				}
			case count > 0:
				for i := 0; i < count; i++ {
					challenges = append(challenges, sha3.Sum256([]byte(fmt.Sprintf("%s-%d", seed, i))))
				}
			default:
				return errors.New("give --in or --count")
			}

			records, err := batch.ProveAll(c.Context(), challenges, rounds, workers)
			if err != nil {
				return err
			}

			f, err := os.Create(args[0])
			if err != nil {
				return err
			}
			level := batch.CompressionDefault
			if best {
				level = batch.CompressionBest
			}
			if err := batch.WriteArchive(f, records, level); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "wrote %d records to %s\n", len(records), args[0])
			return nil
		},
	}
	prove.Flags().Uint64("rounds", defaultRounds, "delay rounds per challenge")
	prove.Flags().Int("workers", 0, "parallel provers (0 = GOMAXPROCS)")
	prove.Flags().String("in", "", "file with one hex challenge per line")
	prove.Flags().String("seed", "mimc52", "prefix for generated challenges")
	prove.Flags().Int("count", 0, "generate this many challenges from --seed")
	prove.Flags().Bool("best", false, "compress for size instead of speed")

	verify := &cobra.Command{
		Use:   "verify <archive>",
		Short: "Verify every record in an archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			workers, _ := c.Flags().GetInt("workers")
			verbose, _ := c.Flags().GetBool("verbose")

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			records, err := batch.ReadArchive(bufio.NewReader(f))
			_ = f.Close()
			if err != nil {
				return err
			}

			results, err := batch.VerifyAll(c.Context(), records, workers)
			if err != nil {
				return err
			}
			out := c.OutOrStdout()
			bad := 0
			for i, ok := range results {
				if !ok {
					bad++
				}
				if verbose || !ok {
					status := "ok"
					if !ok {
						status = "INVALID"
					}
					fmt.Fprintf(out, "%5d %x %d %s %s\n", i, records[i].Challenge, records[i].Rounds, formatProof(records[i].Proof), status)
				}
			}
			fmt.Fprintf(out, "%d records, %d invalid\n", len(records), bad)
			if bad > 0 {
				return errors.Wrapf(errInvalidProof, "%d records", bad)
			}
			return nil
		},
	}
	verify.Flags().Int("workers", 0, "parallel verifiers (0 = GOMAXPROCS)")
	verify.Flags().BoolP("verbose", "v", false, "print every record")

	root.AddCommand(prove, verify)
	return root
}

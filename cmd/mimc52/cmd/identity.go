package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/TheusHen/mimc52/mimc52/config"
	"github.com/TheusHen/mimc52/mimc52/identity"
)

func loadConfig(c *cobra.Command) (*config.Config, error) {
	path, _ := c.Flags().GetString("config")
	return config.Load(path)
}

// loadOrMintIdentity reads the configured key file, minting and saving a
// new identity when there is none yet.
func loadOrMintIdentity(ctx context.Context, cfg *config.Config, log *zap.Logger) (identity.Identity, error) {
	id, err := identity.ReadFile(cfg.Identity.KeyFile)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return identity.Identity{}, err
	}

	log.Info("minting identity", zap.Uint64("rounds", cfg.Identity.Rounds))
	start := time.Now()
	id, err = identity.Generate(ctx, cfg.Identity.Rounds)
	if err != nil {
		return identity.Identity{}, err
	}
	if err := id.WriteFile(cfg.Identity.KeyFile); err != nil {
		return identity.Identity{}, err
	}
	log.Info("identity minted",
		zap.Stringer("address", id.Address),
		zap.Duration("elapsed", time.Since(start)),
		zap.String("key_file", cfg.Identity.KeyFile))
	return id, nil
}

func printIdentity(w io.Writer, id identity.Identity) {
	fmt.Fprintf(w, "address %s\n", id.Address)
	fmt.Fprintf(w, "public  %x\n", []byte(id.KeyPair.PublicKey))
	fmt.Fprintf(w, "proof   %s\n", formatProof(id.Proof))
	fmt.Fprintf(w, "rounds  %d\n", id.Rounds)
}

func newIdentityCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "identity",
		Short: "Mint and inspect peer identities",
	}

	newCmd := &cobra.Command{
		Use:   "new",
		Short: "Mint a new identity",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			rounds, _ := c.Flags().GetUint64("rounds")
			out, _ := c.Flags().GetString("out")
			force, _ := c.Flags().GetBool("force")
			if out != "" && !force {
				if _, err := os.Stat(out); err == nil {
					return errors.Errorf("%s exists, use --force to replace it", out)
				}
			}

			id, err := identity.Generate(c.Context(), rounds)
			if err != nil {
				return err
			}
			if out != "" {
				if err := id.WriteFile(out); err != nil {
					return err
				}
			}
			printIdentity(c.OutOrStdout(), id)
			return nil
		},
	}
	newCmd.Flags().Uint64("rounds", identity.DefaultRounds, "delay rounds behind the address")
	newCmd.Flags().String("out", "", "write the identity to this file")
	newCmd.Flags().Bool("force", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Check and print a stored identity",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			id, err := identity.ReadFile(args[0])
			if err != nil {
				return err
			}
			printIdentity(c.OutOrStdout(), id)
			return nil
		},
	}

	root.AddCommand(newCmd, showCmd)
	return root
}

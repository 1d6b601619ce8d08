package puzzle

import (
	"context"

	"github.com/pkg/errors"

	"github.com/TheusHen/mimc52/mimc52"
	"github.com/TheusHen/mimc52/mimc52/protocol"
)

// Solve runs the delay a puzzle asks for. It stops early when ctx ends.
func Solve(ctx context.Context, p protocol.Puzzle) (protocol.Solution, error) {
	proof, err := mimc52.DelayContext(ctx, p.Challenge, p.Rounds)
	if err != nil {
		return protocol.Solution{}, errors.Wrap(err, "puzzle: solve")
	}
	return protocol.Solution{Puzzle: p, Proof: proof}, nil
}

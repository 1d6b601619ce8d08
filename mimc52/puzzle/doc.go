// Package puzzle gates connection attempts behind delay puzzles.
//
// An Issuer hands out puzzles without keeping any state: the challenge is a
// keyed BLAKE2b MAC over the requesting address, the difficulty, the
// validity window and a random nonce, so the issuer can recompute it when a
// solution comes back. Solving costs Rounds sequential cube-root rounds;
// checking costs two multiplications per round. A spent set rejects replays
// inside the validity window.
//
// After a successful check the server can hand out a pass (see PassKeeper)
// so the same address can reconnect without solving again until the pass
// expires.
package puzzle

// Package mimc52 implements a verifiable delay function over 52-bit prime
// fields.
//
// Delay walks a keyed MiMC-style permutation backwards: every round subtracts
// a round key and takes a cube root, which costs a full modular
// exponentiation that depends on the previous round's output. Verify walks
// the same permutation forwards, where each round is a cube plus a key
// addition, and checks that it lands on the starting point. The work to
// produce a proof therefore grows with rounds times the field width, while
// checking it costs two multiplications per round.
//
// The round keys, the modulus and the anchor value are all derived from a
// 32-byte challenge by chaining a fixed-key AES-256 block encryption, so
// both sides agree on them without exchanging anything but the challenge,
// the round count and the 52-bit proof.
//
// Sub-packages build on the core: identity mints peer addresses that commit
// to a delay proof, puzzle turns Delay/Verify into stateless client puzzles,
// and session gates a QUIC handshake on them.
package mimc52

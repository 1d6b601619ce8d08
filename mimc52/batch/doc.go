// Package batch proves and verifies many challenges at once and stores the
// results in compact LZ4 archives.
package batch

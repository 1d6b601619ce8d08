package batch

import (
	"context"
	"encoding/binary"
	"errors"
	"io"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/TheusHen/mimc52/mimc52"
)

var (
	ErrBadMagic       = errors.New("batch: not a proof archive")
	ErrTruncated      = errors.New("batch: archive truncated")
	ErrTooManyRecords = errors.New("batch: too many records")
)

const (
	// Magic opens every archive, uncompressed.
	Magic = "M52B"

	// RecordSize is the encoded size of one record.
	RecordSize = mimc52.ChallengeSize + 8 + 8

	// MaxRecords bounds the count an archive may declare.
	MaxRecords = 1 << 20

	// initialRecords caps the allocation made from the declared count
	// before any record has been read.
	initialRecords = 1024
)

// Record is one challenge with its round count and proof.
type Record struct {
	Challenge [mimc52.ChallengeSize]byte
	Rounds    uint64
	Proof     uint64
}

// Verify checks the record's proof.
func (r Record) Verify() bool {
	return mimc52.Verify(r.Challenge, r.Rounds, r.Proof)
}

// VerifyContext checks the record's proof, giving up when ctx ends. Records
// read from an archive carry their own round count, which may be huge.
func (r Record) VerifyContext(ctx context.Context) (bool, error) {
	return mimc52.VerifyContext(ctx, r.Challenge, r.Rounds, r.Proof)
}

// CompressionLevel controls the speed/ratio tradeoff.
type CompressionLevel int

const (
	CompressionFast    CompressionLevel = iota // Fastest, lower ratio
	CompressionDefault                         // Balanced
	CompressionBest                            // Best ratio, slower
)

func (l CompressionLevel) lz4Level() lz4.CompressionLevel {
	switch l {
	case CompressionFast:
		return lz4.Fast
	case CompressionBest:
		return lz4.Level9
	default:
		return lz4.Level4
	}
}

var writerPool = sync.Pool{
	New: func() interface{} {
		return lz4.NewWriter(nil)
	},
}

var readerPool = sync.Pool{
	New: func() interface{} {
		return lz4.NewReader(nil)
	},
}

// WriteArchive writes records to w.
// Format:
//
//	4 bytes: magic "M52B"
//	LZ4 frame containing:
//		4 bytes: record count (big endian)
//		48 bytes per record: challenge, rounds, proof (big endian)
func WriteArchive(w io.Writer, records []Record, level CompressionLevel) error {
	if len(records) > MaxRecords {
		return ErrTooManyRecords
	}
	if _, err := io.WriteString(w, Magic); err != nil {
		return err
	}

	zw := writerPool.Get().(*lz4.Writer)
	defer writerPool.Put(zw)
	zw.Reset(w)
	if err := zw.Apply(lz4.CompressionLevelOption(level.lz4Level())); err != nil {
		return err
	}

	var hdr [4]byte
	binary.BigEndian.PutUint32(hdr[:], uint32(len(records)))
	if _, err := zw.Write(hdr[:]); err != nil {
		return err
	}
	var rec [RecordSize]byte
	for _, r := range records {
		copy(rec[:mimc52.ChallengeSize], r.Challenge[:])
		binary.BigEndian.PutUint64(rec[mimc52.ChallengeSize:], r.Rounds)
		binary.BigEndian.PutUint64(rec[mimc52.ChallengeSize+8:], r.Proof)
		if _, err := zw.Write(rec[:]); err != nil {
			return err
		}
	}
	return zw.Close()
}

// ReadArchive reads an archive written by WriteArchive.
func ReadArchive(r io.Reader) ([]Record, error) {
	var magic [len(Magic)]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrBadMagic
		}
		return nil, err
	}
	if string(magic[:]) != Magic {
		return nil, ErrBadMagic
	}

	zr := readerPool.Get().(*lz4.Reader)
	defer readerPool.Put(zr)
	zr.Reset(r)

	var hdr [4]byte
	if err := readFull(zr, hdr[:]); err != nil {
		return nil, err
	}
	count := binary.BigEndian.Uint32(hdr[:])
	if count > MaxRecords {
		return nil, ErrTooManyRecords
	}

	records := make([]Record, 0, min(count, initialRecords))
	var rec [RecordSize]byte
	for i := uint32(0); i < count; i++ {
		if err := readFull(zr, rec[:]); err != nil {
			return nil, err
		}
		var r Record
		copy(r.Challenge[:], rec[:mimc52.ChallengeSize])
		r.Rounds = binary.BigEndian.Uint64(rec[mimc52.ChallengeSize:])
		r.Proof = binary.BigEndian.Uint64(rec[mimc52.ChallengeSize+8:])
		records = append(records, r)
	}
	return records, nil
}

func readFull(r io.Reader, buf []byte) error {
	_, err := io.ReadFull(r, buf)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return err
}

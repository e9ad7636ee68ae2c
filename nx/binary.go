package nx

import (
	"encoding/binary"
	"math"
)

// Small unchecked little-endian readers used once a byte range has already
// been validated against the file size (header tables, child ranges). They
// exist so the record accessors in node.go read like field access instead
// of repeated encoding/binary.LittleEndian.UintNN(data[a:b]) calls.

func readU16(b []byte, off uint64) uint16 {
	return binary.LittleEndian.Uint16(b[off : off+2])
}

func readU32(b []byte, off uint64) uint32 {
	return binary.LittleEndian.Uint32(b[off : off+4])
}

func readU64(b []byte, off uint64) uint64 {
	return binary.LittleEndian.Uint64(b[off : off+8])
}

func readI32(b []byte, off uint64) int32 {
	return int32(readU32(b, off))
}

func readI64(b []byte, off uint64) int64 {
	return int64(readU64(b, off))
}

func readF64(b []byte, off uint64) float64 {
	return math.Float64frombits(readU64(b, off))
}

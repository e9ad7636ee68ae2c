package nx

import "encoding/binary"

// magic is the 4-byte signature at the start of every NX file, "PKG4"
// read as a little-endian u32.
const magic uint32 = 0x34474B50

const headerSize = 52
const nodeRecordSize = 20
const tableEntrySize = 8

// header mirrors the 52-byte packed on-disk header. All offsets are byte
// offsets from the mapped base.
type header struct {
	magic        uint32
	nodeCount    uint32
	nodeOffset   uint64
	stringCount  uint32
	stringOffset uint64
	bitmapCount  uint32
	bitmapOffset uint64
	audioCount   uint32
	audioOffset  uint64
}

// parseHeader reads and validates the header at the start of data. It
// validates only that each table's declared extent fits inside the file;
// table contents are checked lazily as they are read.
func parseHeader(path string, data []byte) (header, error) {
	var h header
	if len(data) < headerSize {
		return h, newFormatError(path, int64(len(data)), "file shorter than header")
	}

	h.magic = binary.LittleEndian.Uint32(data[0:4])
	if h.magic != magic {
		return h, newFormatError(path, 0, "bad magic, not a PKG4 archive")
	}

	h.nodeCount = binary.LittleEndian.Uint32(data[4:8])
	h.nodeOffset = binary.LittleEndian.Uint64(data[8:16])
	h.stringCount = binary.LittleEndian.Uint32(data[16:20])
	h.stringOffset = binary.LittleEndian.Uint64(data[20:28])
	h.bitmapCount = binary.LittleEndian.Uint32(data[28:32])
	h.bitmapOffset = binary.LittleEndian.Uint64(data[32:40])
	h.audioCount = binary.LittleEndian.Uint32(data[40:44])
	h.audioOffset = binary.LittleEndian.Uint64(data[44:52])

	size := uint64(len(data))
	if err := checkTableExtent(path, "node", h.nodeOffset, uint64(h.nodeCount)*nodeRecordSize, size); err != nil {
		return h, err
	}
	if err := checkTableExtent(path, "string", h.stringOffset, uint64(h.stringCount)*tableEntrySize, size); err != nil {
		return h, err
	}
	if h.bitmapOffset != 0 {
		if err := checkTableExtent(path, "bitmap", h.bitmapOffset, uint64(h.bitmapCount)*tableEntrySize, size); err != nil {
			return h, err
		}
	}
	if h.audioOffset != 0 {
		if err := checkTableExtent(path, "audio", h.audioOffset, uint64(h.audioCount)*tableEntrySize, size); err != nil {
			return h, err
		}
	}

	return h, nil
}

func checkTableExtent(path, name string, offset, length, fileSize uint64) error {
	end := offset + length
	if end < offset || end > fileSize {
		return newFormatError(path, int64(offset), name+" table extends past end of file")
	}
	return nil
}

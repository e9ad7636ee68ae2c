package nx

// Archive is a memory-mapped NX file. It owns the mapping for its entire
// lifetime; Node, Bitmap and Audio handles borrow from it and are valid
// exactly as long as the Archive is open.
//
// An Archive and every handle derived from it are safe to share across
// goroutines for reading: Open never mutates the mapping, and neither does
// any lookup, iteration, or scalar accessor.
type Archive struct {
	path   string
	region *mappedRegion
	data   []byte
	head   header
}

// Open maps path read-only and validates its header. It does not walk the
// node tree; that happens lazily as callers descend from Root.
func Open(path string) (*Archive, error) {
	region, err := openMappedRegion(path)
	if err != nil {
		return nil, err
	}

	data := region.bytes()
	h, err := parseHeader(path, data)
	if err != nil {
		region.close()
		return nil, err
	}

	return &Archive{path: path, region: region, data: data, head: h}, nil
}

// newArchiveFromBytes builds an Archive over an in-memory buffer, skipping
// the file mapping. Used by tests that synthesize archive fixtures.
func newArchiveFromBytes(data []byte) (*Archive, error) {
	h, err := parseHeader("", data)
	if err != nil {
		return nil, err
	}
	return &Archive{data: data, head: h}, nil
}

// Close releases the underlying mapping and file descriptor. Handles
// derived from the Archive must not be used afterwards.
func (a *Archive) Close() error {
	if a.region == nil {
		return nil
	}
	return a.region.close()
}

// Root returns the node at index 0, the conventional root of the tree.
func (a *Archive) Root() Node {
	if a.head.nodeCount == 0 {
		return Node{}
	}
	return a.node(0)
}

// NodeCount returns the number of node records in the archive.
func (a *Archive) NodeCount() uint32 { return a.head.nodeCount }

// StringCount returns the number of entries in the string table.
func (a *Archive) StringCount() uint32 { return a.head.stringCount }

// BitmapCount returns the number of entries in the bitmap table.
func (a *Archive) BitmapCount() uint32 { return a.head.bitmapCount }

// AudioCount returns the number of entries in the audio table.
func (a *Archive) AudioCount() uint32 { return a.head.audioCount }

// node returns the Node handle for the record at the given absolute index
// into the node table. The index is trusted to be in range; callers derive
// it only from header counts or child ranges already checked.
func (a *Archive) node(index uint32) Node {
	off := a.head.nodeOffset + uint64(index)*nodeRecordSize
	return Node{archive: a, recordOffset: off, valid: true}
}

// childRangeValid reports whether [first, first+count) lies entirely
// within the node table, guarding against a corrupted record sending a
// caller out of bounds.
func (a *Archive) childRangeValid(first uint32, count uint16) bool {
	return uint64(first)+uint64(count) <= uint64(a.head.nodeCount)
}

// stringBytes returns the raw bytes of string i without copying, or nil
// if i is out of range for the string table.
func (a *Archive) stringBytes(i uint32) []byte {
	if i >= a.head.stringCount {
		return nil
	}
	entryOff := a.head.stringOffset + uint64(i)*tableEntrySize
	strOff := readU64(a.data, entryOff)
	length := uint64(readU16(a.data, strOff))
	start := strOff + 2
	return a.data[start : start+length]
}

// String returns a copy of string i, decoded as UTF-8 with lossless
// passthrough for bytes that are not valid UTF-8: the format never
// guarantees its stored bytes are valid Unicode. An out-of-range index
// returns "".
func (a *Archive) String(i uint32) string {
	return string(a.stringBytes(i))
}

// bitmapBlobOffset returns the blob offset for bitmap i and whether i was
// in range.
func (a *Archive) bitmapBlobOffset(i uint32) (uint64, bool) {
	if i >= a.head.bitmapCount {
		return 0, false
	}
	entryOff := a.head.bitmapOffset + uint64(i)*tableEntrySize
	return readU64(a.data, entryOff), true
}

// audioBlobOffset returns the blob offset for audio i and whether i was
// in range.
func (a *Archive) audioBlobOffset(i uint32) (uint64, bool) {
	if i >= a.head.audioCount {
		return 0, false
	}
	entryOff := a.head.audioOffset + uint64(i)*tableEntrySize
	return readU64(a.data, entryOff), true
}

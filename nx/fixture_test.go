package nx

import (
	"bytes"
	"encoding/binary"
	"math"
	"sort"

	"github.com/pierrec/lz4/v4"
)

// fixtureNode is the in-memory description of a node used to build test
// archives.
type fixtureNode struct {
	name     string
	typ      Type
	ival     int64
	dval     float64
	sval     string
	vx, vy   int32
	bitmap   *fixtureBitmap
	audio    *fixtureAudio
	children []*fixtureNode
}

type fixtureBitmap struct {
	width, height uint16
	pixels        []byte // raw, uncompressed, must be width*height*4 bytes
}

type fixtureAudio struct {
	data []byte
}

// sortChildrenRecursively orders every node's children under the
// archive's name comparator (childlookup.go's compareKeys), since the
// format requires each parent's children to be pre-sorted by the binary
// search's exact comparator.
func sortChildrenRecursively(node *fixtureNode) {
	sort.Slice(node.children, func(i, j int) bool {
		return compareKeys([]byte(node.children[i].name), []byte(node.children[j].name)) < 0
	})
	for _, c := range node.children {
		sortChildrenRecursively(c)
	}
}

// buildFixture flattens root breadth-first (so children of one parent are
// contiguous, as the format requires), assigns string IDs, compresses any
// bitmap pixel data with LZ4, and serializes the whole thing into an
// in-memory NX file. Returns the bytes and an Archive already opened over
// them.
func buildFixture(root *fixtureNode) (*Archive, []byte) {
	sortChildrenRecursively(root)

	var flat []*fixtureNode
	queue := []*fixtureNode{root}
	firstChild := map[*fixtureNode]uint32{}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		flat = append(flat, node)
		if len(node.children) > 0 {
			firstChild[node] = uint32(len(flat)) + uint32(len(queue))
			queue = append(queue, node.children...)
		}
	}

	strs := []string{}
	strID := map[string]uint32{}
	internString := func(s string) uint32 {
		if id, ok := strID[s]; ok {
			return id
		}
		id := uint32(len(strs))
		strs = append(strs, s)
		strID[s] = id
		return id
	}
	internString("") // index 0 is always the empty string for the root name

	type bitmapEntry struct {
		width, height uint16
		compressed     []byte
	}
	var bitmaps []bitmapEntry
	var audios [][]byte

	type nodeWrite struct {
		nameID     uint32
		firstChild uint32
		count      uint16
		typ        uint16
		payload    [8]byte
	}
	writes := make([]nodeWrite, len(flat))

	for i, node := range flat {
		w := nodeWrite{nameID: internString(node.name), typ: uint16(node.typ)}
		if len(node.children) > 0 {
			w.firstChild = firstChild[node]
			w.count = uint16(len(node.children))
		}
		switch node.typ {
		case TypeInt64:
			binary.LittleEndian.PutUint64(w.payload[:], uint64(node.ival))
		case TypeDouble:
			binary.LittleEndian.PutUint64(w.payload[:], math.Float64bits(node.dval))
		case TypeString:
			id := internString(node.sval)
			binary.LittleEndian.PutUint32(w.payload[:4], id)
		case TypeVector:
			binary.LittleEndian.PutUint32(w.payload[:4], uint32(node.vx))
			binary.LittleEndian.PutUint32(w.payload[4:8], uint32(node.vy))
		case TypeBitmap:
			compressed := compressBlockForTest(node.bitmap.pixels)
			idx := uint32(len(bitmaps))
			bitmaps = append(bitmaps, bitmapEntry{width: node.bitmap.width, height: node.bitmap.height, compressed: compressed})
			binary.LittleEndian.PutUint32(w.payload[:4], idx)
			binary.LittleEndian.PutUint16(w.payload[4:6], node.bitmap.width)
			binary.LittleEndian.PutUint16(w.payload[6:8], node.bitmap.height)
		case TypeAudio:
			idx := uint32(len(audios))
			audios = append(audios, node.audio.data)
			binary.LittleEndian.PutUint32(w.payload[:4], idx)
			binary.LittleEndian.PutUint32(w.payload[4:8], uint32(len(node.audio.data)))
		}
		writes[i] = w
	}

	var buf bytes.Buffer
	buf.Write(make([]byte, headerSize))

	nodeOffset := uint64(buf.Len())
	for _, w := range writes {
		binary.Write(&buf, binary.LittleEndian, w.nameID)
		binary.Write(&buf, binary.LittleEndian, w.firstChild)
		binary.Write(&buf, binary.LittleEndian, w.count)
		binary.Write(&buf, binary.LittleEndian, w.typ)
		buf.Write(w.payload[:])
	}

	stringOffset := uint64(buf.Len())
	stringEntryOffsets := make([]uint64, len(strs))
	// First lay out the raw string bytes after the offset table, then
	// backfill the table itself.
	tableBytes := make([]byte, len(strs)*8)
	bodyStart := stringOffset + uint64(len(tableBytes))
	var body bytes.Buffer
	for i, s := range strs {
		stringEntryOffsets[i] = bodyStart + uint64(body.Len())
		binary.Write(&body, binary.LittleEndian, uint16(len(s)))
		body.WriteString(s)
	}
	for i, off := range stringEntryOffsets {
		binary.LittleEndian.PutUint64(tableBytes[i*8:], off)
	}
	buf.Write(tableBytes)
	buf.Write(body.Bytes())

	bitmapOffset := uint64(0)
	if len(bitmaps) > 0 {
		bitmapOffset = uint64(buf.Len())
		bitmapTable := make([]byte, len(bitmaps)*8)
		blobStart := bitmapOffset + uint64(len(bitmapTable))
		var blobs bytes.Buffer
		for i, b := range bitmaps {
			binary.LittleEndian.PutUint64(bitmapTable[i*8:], blobStart+uint64(blobs.Len()))
			binary.Write(&blobs, binary.LittleEndian, uint32(len(b.compressed)))
			blobs.Write(b.compressed)
		}
		buf.Write(bitmapTable)
		buf.Write(blobs.Bytes())
	}

	audioOffset := uint64(0)
	if len(audios) > 0 {
		audioOffset = uint64(buf.Len())
		audioTable := make([]byte, len(audios)*8)
		blobStart := audioOffset + uint64(len(audioTable))
		var blobs bytes.Buffer
		for i, a := range audios {
			binary.LittleEndian.PutUint64(audioTable[i*8:], blobStart+uint64(blobs.Len()))
			blobs.Write(a)
		}
		buf.Write(audioTable)
		buf.Write(blobs.Bytes())
	}

	out := buf.Bytes()
	binary.LittleEndian.PutUint32(out[0:4], magic)
	binary.LittleEndian.PutUint32(out[4:8], uint32(len(flat)))
	binary.LittleEndian.PutUint64(out[8:16], nodeOffset)
	binary.LittleEndian.PutUint32(out[16:20], uint32(len(strs)))
	binary.LittleEndian.PutUint64(out[20:28], stringOffset)
	binary.LittleEndian.PutUint32(out[28:32], uint32(len(bitmaps)))
	binary.LittleEndian.PutUint64(out[32:40], bitmapOffset)
	binary.LittleEndian.PutUint32(out[40:44], uint32(len(audios)))
	binary.LittleEndian.PutUint64(out[44:52], audioOffset)

	archive, err := newArchiveFromBytes(out)
	if err != nil {
		panic(err)
	}
	return archive, out
}

// compressBlockForTest LZ4-compresses pixels into a well-formed LZ4 block.
// CompressBlockBound's destination sizing always leaves room for a
// literal-only encoding, so this succeeds even for small or
// non-repetitive fixture data.
func compressBlockForTest(pixels []byte) []byte {
	dst := make([]byte, lz4.CompressBlockBound(len(pixels)))
	var ht [1 << 16]int
	n, err := lz4.CompressBlock(pixels, dst, ht[:])
	if err != nil {
		panic(err)
	}
	if n == 0 {
		panic("fixture pixel data could not be LZ4-compressed")
	}
	return dst[:n]
}

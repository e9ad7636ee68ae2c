package nx

import (
	"github.com/pierrec/lz4/v4"
)

// bitmapSlack is the extra tail capacity the LZ4 block API requires for
// speculative reads near the end of the output buffer.
const bitmapSlack = 16

// Bitmap is a handle to an LZ4-compressed pixel blob: (width, height,
// blob offset). The zero Bitmap is the null handle.
type Bitmap struct {
	archive    *Archive
	valid      bool
	width      uint16
	height     uint16
	blobOffset uint64
}

// IsValid reports whether b is a non-null handle.
func (b Bitmap) IsValid() bool { return b.valid }

// Width returns the bitmap's width in pixels.
func (b Bitmap) Width() uint16 { return b.width }

// Height returns the bitmap's height in pixels.
func (b Bitmap) Height() uint16 { return b.height }

// Length returns the decompressed size in bytes: width * height * 4.
func (b Bitmap) Length() uint32 {
	return uint32(b.width) * uint32(b.height) * 4
}

// ID returns a stable identity for the underlying blob: equal IDs mean the
// same compressed bitmap, even when reached via two different Node paths.
func (b Bitmap) ID() uint64 {
	if !b.valid {
		return 0
	}
	return b.blobOffset
}

// NewOutputBuffer allocates a buffer sized for Data: Length() bytes plus
// the LZ4 block API's slack requirement.
func (b Bitmap) NewOutputBuffer() []byte {
	return make([]byte, b.Length()+bitmapSlack)
}

// Data decompresses the bitmap into out and returns the populated prefix
// (exactly Length() bytes). out must have capacity at least
// Length()+16; NewOutputBuffer returns a buffer of the right size.
//
// Decompression only touches out, so callers decoding bitmaps concurrently
// must each pass their own buffer. DecodeBitmaps does this automatically.
// There is no shared scratch state here.
func (b Bitmap) Data(out []byte) ([]byte, error) {
	if !b.valid {
		return nil, nil
	}
	want := int(b.Length())
	if len(out) < want+bitmapSlack {
		out = append(out, make([]byte, want+bitmapSlack-len(out))...)
	}

	data := b.archive.data
	compressedLen := readU32(data, b.blobOffset)
	src := data[b.blobOffset+4 : b.blobOffset+4+uint64(compressedLen)]

	n, err := lz4.UncompressBlock(src, out)
	if err != nil {
		return nil, newDecompressError(b.blobOffset, b.Length(), n, err)
	}
	if n != want {
		return nil, newDecompressError(b.blobOffset, b.Length(), n, errShortDecompress)
	}
	return out[:n], nil
}

var errShortDecompress = shortDecompressError{}

type shortDecompressError struct{}

func (shortDecompressError) Error() string { return "decompressed length did not match width*height*4" }

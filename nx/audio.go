package nx

// Audio is a handle to a raw audio blob: (length, blob offset). Audio
// interior formats are never inspected. Data returns the opaque bytes
// exactly as stored.
type Audio struct {
	archive    *Archive
	valid      bool
	length     uint32
	blobOffset uint64
}

// IsValid reports whether a is a non-null handle.
func (a Audio) IsValid() bool { return a.valid }

// Length returns the audio blob's length in bytes.
func (a Audio) Length() uint32 { return a.length }

// Data returns a borrowed view of the audio blob's bytes. The slice is
// valid exactly as long as the owning Archive is open.
func (a Audio) Data() []byte {
	if !a.valid {
		return nil
	}
	return a.archive.data[a.blobOffset : a.blobOffset+uint64(a.length)]
}

// Equal reports whether a and o refer to the same blob.
func (a Audio) Equal(o Audio) bool {
	if a.valid != o.valid {
		return false
	}
	if !a.valid {
		return true
	}
	return a.archive == o.archive && a.blobOffset == o.blobOffset
}

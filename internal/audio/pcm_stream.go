package audio

import (
	"fmt"
	"io"
)

// PCMStream serves rendered 16-bit PCM as an io.ReadSeeker.
// Ebitengine's audio.NewPlayer accepts it directly.
type PCMStream struct {
	data       []byte // Interleaved 16-bit signed little-endian stereo
	sampleRate int64  // Sample rate in Hz
	offset     int64  // Current read position
}

// NewPCMStream renders a cue into a seekable stream.
//
// Parameters:
//   - c: cue to render
//   - sampleRate: output sample rate, must match the audio context
//   - volume: 0..1
func NewPCMStream(c Cue, sampleRate int, volume float64) *PCMStream {
	return &PCMStream{
		data:       RenderPCM16(c, sampleRate, volume),
		sampleRate: int64(sampleRate),
	}
}

// Read reads PCM data into p.
// Implements io.Reader interface.
func (s *PCMStream) Read(p []byte) (n int, err error) {
	if s.offset >= int64(len(s.data)) {
		return 0, io.EOF
	}

	n = copy(p, s.data[s.offset:])
	s.offset += int64(n)
	return n, nil
}

// Seek sets the offset for the next Read.
// Implements io.Seeker interface.
func (s *PCMStream) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64

	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = s.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(s.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, fmt.Errorf("negative position: %d", newOffset)
	}

	s.offset = newOffset
	return newOffset, nil
}

// Length returns the total length of the PCM data in bytes.
func (s *PCMStream) Length() int64 {
	return int64(len(s.data))
}

// SampleRate returns the sample rate of the audio in Hz.
func (s *PCMStream) SampleRate() int64 {
	return s.sampleRate
}

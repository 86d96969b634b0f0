// Package wav encodes and decodes 16-bit PCM mono RIFF/WAVE files.
//
// It exists so rendered waveforms can be persisted and inspected with
// ordinary audio tooling; it intentionally supports only the single format
// the synthesis side produces.
package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/algo-pluck/dsp/core"
)

// Errors returned by WAV encoding and decoding.
var (
	ErrInvalidSampleRate = errors.New("wav: sample rate must be positive")
	ErrBadHeader         = errors.New("wav: malformed or unsupported header")
)

const (
	formatPCM     = 1
	channelsMono  = 1
	bitsPerSample = 16
)

// header is the canonical 44-byte RIFF/WAVE header for 16-bit PCM.
type header struct {
	ChunkID       [4]byte // "RIFF"
	ChunkSize     uint32
	Format        [4]byte // "WAVE"
	Subchunk1ID   [4]byte // "fmt "
	Subchunk1Size uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	Subchunk2ID   [4]byte // "data"
	Subchunk2Size uint32
}

// Encode writes samples as 16-bit PCM mono WAVE data.
//
// Samples are clamped to [-1, 1] before quantization. An empty sample slice
// produces a valid file with a zero-length data chunk.
func Encode(w io.Writer, samples []float64, sampleRate int) error {
	if sampleRate <= 0 {
		return ErrInvalidSampleRate
	}

	dataSize := uint32(len(samples) * channelsMono * bitsPerSample / 8)
	h := header{
		ChunkID:       [4]byte{'R', 'I', 'F', 'F'},
		ChunkSize:     36 + dataSize,
		Format:        [4]byte{'W', 'A', 'V', 'E'},
		Subchunk1ID:   [4]byte{'f', 'm', 't', ' '},
		Subchunk1Size: 16,
		AudioFormat:   formatPCM,
		NumChannels:   channelsMono,
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(sampleRate * channelsMono * bitsPerSample / 8),
		BlockAlign:    channelsMono * bitsPerSample / 8,
		BitsPerSample: bitsPerSample,
		Subchunk2ID:   [4]byte{'d', 'a', 't', 'a'},
		Subchunk2Size: dataSize,
	}

	if err := binary.Write(w, binary.LittleEndian, h); err != nil {
		return fmt.Errorf("wav: write header failed: %w", err)
	}

	pcm := make([]int16, len(samples))
	for i, s := range samples {
		pcm[i] = int16(core.Clamp(s, -1, 1) * 32767)
	}
	if err := binary.Write(w, binary.LittleEndian, pcm); err != nil {
		return fmt.Errorf("wav: write data failed: %w", err)
	}

	return nil
}

// WriteFile encodes samples into a WAV file at path.
func WriteFile(path string, samples []float64, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wav: create %s failed: %w", path, err)
	}

	if err := Encode(f, samples, sampleRate); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("wav: close %s failed: %w", path, err)
	}

	return nil
}

// Decode reads 16-bit PCM mono WAVE data and returns the samples scaled to
// [-1, 1] together with the sample rate.
func Decode(r io.Reader) ([]float64, int, error) {
	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, 0, fmt.Errorf("wav: read header failed: %w", err)
	}

	if string(h.ChunkID[:]) != "RIFF" || string(h.Format[:]) != "WAVE" ||
		string(h.Subchunk1ID[:]) != "fmt " || string(h.Subchunk2ID[:]) != "data" {
		return nil, 0, ErrBadHeader
	}
	if h.AudioFormat != formatPCM || h.NumChannels != channelsMono ||
		h.BitsPerSample != bitsPerSample || h.SampleRate == 0 {
		return nil, 0, ErrBadHeader
	}

	pcm := make([]int16, h.Subchunk2Size/2)
	if err := binary.Read(r, binary.LittleEndian, pcm); err != nil {
		return nil, 0, fmt.Errorf("wav: read data failed: %w", err)
	}

	samples := make([]float64, len(pcm))
	for i, v := range pcm {
		samples[i] = float64(v) / 32767
	}

	return samples, int(h.SampleRate), nil
}

// ReadFile decodes a WAV file at path.
func ReadFile(path string) ([]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("wav: open %s failed: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

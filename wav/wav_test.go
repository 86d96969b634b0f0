package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestEncodeValidation(t *testing.T) {
	var buf bytes.Buffer

	if err := Encode(&buf, []float64{0}, 0); !errors.Is(err, ErrInvalidSampleRate) {
		t.Fatalf("error = %v, want ErrInvalidSampleRate", err)
	}
	if err := Encode(&buf, []float64{0}, -44100); !errors.Is(err, ErrInvalidSampleRate) {
		t.Fatalf("error = %v, want ErrInvalidSampleRate", err)
	}
}

func TestEncodeHeader(t *testing.T) {
	var buf bytes.Buffer

	samples := []float64{0, 0.5, -0.5, 1}
	if err := Encode(&buf, samples, 44100); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	raw := buf.Bytes()
	if len(raw) != 44+2*len(samples) {
		t.Fatalf("size = %d, want %d", len(raw), 44+2*len(samples))
	}

	if string(raw[0:4]) != "RIFF" || string(raw[8:12]) != "WAVE" {
		t.Fatalf("bad RIFF/WAVE markers: %q %q", raw[0:4], raw[8:12])
	}

	rate := binary.LittleEndian.Uint32(raw[24:28])
	if rate != 44100 {
		t.Fatalf("sample rate = %d, want 44100", rate)
	}

	dataSize := binary.LittleEndian.Uint32(raw[40:44])
	if dataSize != uint32(2*len(samples)) {
		t.Fatalf("data size = %d, want %d", dataSize, 2*len(samples))
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	samples := []float64{0, 0.25, -0.25, 0.9999, -1, 1, 0.0001}

	var buf bytes.Buffer
	if err := Encode(&buf, samples, 22050); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	decoded, rate, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if rate != 22050 {
		t.Fatalf("rate = %d, want 22050", rate)
	}
	if len(decoded) != len(samples) {
		t.Fatalf("len = %d, want %d", len(decoded), len(samples))
	}

	for i := range samples {
		if math.Abs(decoded[i]-samples[i]) > 1.0/32767 {
			t.Fatalf("sample[%d] = %v, want %v within one quantization step", i, decoded[i], samples[i])
		}
	}
}

func TestEncodeClampsOutOfRange(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, []float64{2, -3}, 8000); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	decoded, _, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if decoded[0] != 1 || decoded[1] != -1 {
		t.Fatalf("decoded = %v, want [1 -1]", decoded)
	}
}

func TestEncodeEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, nil, 44100); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if buf.Len() != 44 {
		t.Fatalf("size = %d, want header-only 44", buf.Len())
	}

	decoded, rate, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(decoded) != 0 || rate != 44100 {
		t.Fatalf("decoded len=%d rate=%d, want 0 and 44100", len(decoded), rate)
	}
}

func TestDecodeBadHeader(t *testing.T) {
	garbage := bytes.NewReader(make([]byte, 64))
	if _, _, err := Decode(garbage); !errors.Is(err, ErrBadHeader) {
		t.Fatalf("error = %v, want ErrBadHeader", err)
	}

	short := bytes.NewReader([]byte("RIFF"))
	if _, _, err := Decode(short); err == nil {
		t.Fatal("expected error for truncated header")
	}
}

func TestWriteReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pluck.wav")
	samples := []float64{0.1, -0.1, 0.2}

	if err := WriteFile(path, samples, 44100); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.Size() != 44+2*int64(len(samples)) {
		t.Fatalf("file size = %d, want %d", info.Size(), 44+2*len(samples))
	}

	decoded, rate, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if rate != 44100 || len(decoded) != len(samples) {
		t.Fatalf("rate=%d len=%d, want 44100 and %d", rate, len(decoded), len(samples))
	}
}

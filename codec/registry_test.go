package codec_test

import (
	"testing"

	"github.com/cocosip/stillpic/codec"
)

func TestCodecRegistry(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		wantFound bool
		wantName  string
	}{
		{name: "Get by UID", key: "1.3.6.1.4.1.stillpic.1", wantFound: true, wantName: "stillpic"},
		{name: "Get by name", key: "stillpic", wantFound: true, wantName: "stillpic"},
		{name: "Get non-existent codec", key: "non-existent", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := codec.Get(tt.key)

			if tt.wantFound {
				if err != nil {
					t.Errorf("Get(%q) unexpected error: %v", tt.key, err)
					return
				}
				if c == nil {
					t.Errorf("Get(%q) returned nil codec", tt.key)
					return
				}
				if c.Name() != tt.wantName {
					t.Errorf("Get(%q).Name() = %q, want %q", tt.key, c.Name(), tt.wantName)
				}
			} else {
				if err == nil {
					t.Errorf("Get(%q) expected error, got nil", tt.key)
				}
				if err != codec.ErrCodecNotFound {
					t.Errorf("Get(%q) error = %v, want %v", tt.key, err, codec.ErrCodecNotFound)
				}
			}
		})
	}
}

func TestListCodecsIncludesStillpic(t *testing.T) {
	codecs := codec.List()

	found := false
	for _, c := range codecs {
		if c.Name() == "stillpic" {
			found = true
		}
	}
	if !found {
		t.Error("List() did not include the stillpic codec")
	}
}

func TestStillpicCodecEncodeDecode(t *testing.T) {
	c, err := codec.Get("stillpic")
	if err != nil {
		t.Fatalf("Failed to get stillpic codec: %v", err)
	}

	width, height := 32, 32
	pixelData := make([]byte, width*height*3)
	for i := range pixelData {
		pixelData[i] = byte(i % 256)
	}

	params := codec.EncodeParams{
		PixelData:  pixelData,
		Width:      width,
		Height:     height,
		Components: 3,
		BitDepth:   8,
		Options:    nil,
	}

	compressed, err := c.Encode(params)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	t.Logf("Compressed size: %d bytes (raw %d)", len(compressed), len(pixelData))

	result, err := c.Decode(compressed)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if result.Width != width {
		t.Errorf("Width = %d, want %d", result.Width, width)
	}
	if result.Height != height {
		t.Errorf("Height = %d, want %d", result.Height, height)
	}
	if result.Components != 3 {
		t.Errorf("Components = %d, want 3", result.Components)
	}
	if result.BitDepth != 8 {
		t.Errorf("BitDepth = %d, want 8", result.BitDepth)
	}
}

func TestEncodeRejectsWrongComponentCount(t *testing.T) {
	c, err := codec.Get("stillpic")
	if err != nil {
		t.Fatalf("Failed to get stillpic codec: %v", err)
	}
	params := codec.EncodeParams{
		PixelData:  make([]byte, 64),
		Width:      8,
		Height:     8,
		Components: 1,
		BitDepth:   8,
	}
	if _, err := c.Encode(params); err == nil {
		t.Error("expected error for 1-component image, got nil")
	}
}

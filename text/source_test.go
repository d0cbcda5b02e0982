package text

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// loadTestFont loads the embedded Go font for testing.
func loadTestFont(t *testing.T) *FontSource {
	t.Helper()

	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("failed to load test font: %v", err)
	}
	return source
}

func TestNewFontSource(t *testing.T) {
	source := loadTestFont(t)

	if source.Name() == "" {
		t.Error("Name() is empty, want the family name from the font")
	}
	if len(source.Data()) != len(goregular.TTF) {
		t.Errorf("Data() length = %d, want %d", len(source.Data()), len(goregular.TTF))
	}
}

func TestNewFontSourceKeepsOwnCopy(t *testing.T) {
	data := append([]byte(nil), goregular.TTF...)
	source, err := NewFontSource(data)
	if err != nil {
		t.Fatalf("NewFontSource() = %v", err)
	}

	data[0] = 0xff
	if source.Data()[0] == 0xff {
		t.Error("mutating the input buffer changed the source data")
	}
}

func TestNewFontSourceErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"nil", nil},
		{"empty", []byte{}},
		{"garbage", []byte("this is not a font")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewFontSource(tt.data); err == nil {
				t.Error("NewFontSource() = nil, want error")
			}
		})
	}
}

func TestNewFontSourceEmptyDataSentinel(t *testing.T) {
	_, err := NewFontSource(nil)
	if !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(nil) = %v, want ErrEmptyFontData", err)
	}
}

func TestFaceNilSourcePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Face on nil source did not panic")
		}
	}()

	var source *FontSource
	source.Face(12)
}

package errors

import (
	"testing"
)

func TestValidateDatasetName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid builtin", "integrated", false},
		{"valid with dash", "split-brain", false},
		{"valid with underscore", "my_network", false},
		{"valid with dot", "cortex.v2", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 200)), true},
		{"path separator", "foo/bar", true},
		{"backslash", "foo\\bar", true},
		{"traversal", "..", true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDatasetName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDatasetName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateHexColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"six digit", "#2E86AB", false},
		{"three digit", "#abc", false},
		{"bare six digit", "2E86AB", false},

		{"empty", "", true},
		{"named color", "magenta", true},
		{"four digits", "#abcd", true},
		{"non-hex digits", "#ZZZZZZ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHexColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHexColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidStyle) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidStyle)
			}
		})
	}
}

func TestValidateSurface(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		wantErr bool
	}{
		{"default square", 800, 800, false},
		{"wide", 1920, 1080, false},
		{"minimum", 16, 16, false},
		{"maximum", 16384, 16384, false},

		{"zero width", 0, 800, true},
		{"negative", -100, 800, true},
		{"too small", 8, 8, true},
		{"too large", 20000, 800, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSurface(tt.w, tt.h)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSurface(%d, %d) error = %v, wantErr %v", tt.w, tt.h, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "out/network.svg", false},
		{"absolute", "/tmp/network.svg", false},
		{"dotted", "../sibling/network.svg", false},

		{"empty", "", true},
		{"null byte", "out\x00.svg", true},
		{"control char", "out\x01.svg", true},
		{"too long", string(make([]byte, 600)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

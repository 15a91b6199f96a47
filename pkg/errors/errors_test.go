package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "WithoutCause",
			err:  New(ErrCodeInvalidPath, "not a file: %s", "/nope"),
			want: "INVALID_PATH: not a file: /nope",
		},
		{
			name: "WithCause",
			err:  Wrap(ErrCodeIO, fmt.Errorf("disk full"), "copy %s", "libfoo.so"),
			want: "IO_ERROR: copy libfoo.so: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsAndGetCode(t *testing.T) {
	base := New(ErrCodeParse, "bad line")
	wrapped := fmt.Errorf("resolving: %w", base)

	if !Is(wrapped, ErrCodeParse) {
		t.Error("Is should find the code through wrapping")
	}
	if Is(wrapped, ErrCodeIO) {
		t.Error("Is should not match a different code")
	}
	if got := GetCode(wrapped); got != ErrCodeParse {
		t.Errorf("GetCode = %q, want %q", got, ErrCodeParse)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode on plain error = %q, want empty", got)
	}
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Wrap(ErrCodeIO, cause, "outer")
	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the cause")
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidPath, "bad path")); got != "bad path" {
		t.Errorf("UserMessage = %q, want %q", got, "bad path")
	}
	if got := UserMessage(errors.New("plain")); got != "plain" {
		t.Errorf("UserMessage = %q, want %q", got, "plain")
	}
}

func TestMissingLibrariesError(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  string
	}{
		{"Single", []string{"libfoo.so.1"}, "library not found: libfoo.so.1"},
		{"Multiple", []string{"liba.so", "libb.so"}, "libraries not found: liba.so, libb.so"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &MissingLibrariesError{Names: tt.names}
			if got := err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMissingLibrariesErrorAs(t *testing.T) {
	var target *MissingLibrariesError
	err := fmt.Errorf("resolve: %w", &MissingLibrariesError{Names: []string{"libx.so"}})
	if !errors.As(err, &target) {
		t.Fatal("errors.As should find MissingLibrariesError")
	}
	if len(target.Names) != 1 || target.Names[0] != "libx.so" {
		t.Errorf("Names = %v, want [libx.so]", target.Names)
	}
}

package fonts

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadFontWithSize(t *testing.T) {
	if err := LoadFontWithSize("test", goregular.TTF, 12); err != nil {
		t.Fatalf("LoadFontWithSize: %v", err)
	}
	if FontName("test").Get() == nil {
		t.Fatal("expected face for loaded font")
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFont("broken", []byte("not a font")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestGetUnknownFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown font")
		}
	}()
	FontName("missing").Get()
}

package utils

import (
    "errors"
    "strings"
    "testing"
)

// minimal valid PNG header followed by padding; enough for sniffing.
var pngHeader = append([]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 32)...)

func TestDetectImage(t *testing.T) {
    ctype, err := DetectImage(pngHeader)
    if err != nil {
        t.Fatalf("png rejected: %v", err)
    }
    if ctype != "image/png" {
        t.Fatalf("got content type %q, want image/png", ctype)
    }

    if _, err := DetectImage([]byte("just some text, definitely not pixels")); !errors.Is(err, ErrNotAnImage) {
        t.Fatalf("text accepted as image, err = %v", err)
    }
    if _, err := DetectImage([]byte(`{"cargo": 1}`)); !errors.Is(err, ErrNotAnImage) {
        t.Fatalf("json accepted as image, err = %v", err)
    }
}

func TestSlugify(t *testing.T) {
    cases := []struct{ in, want string }{
        {"Intercity Express", "intercity-express"},
        {"  Night  Train #7 ", "night-train-7"},
        {"Укрзалізниця", ""},
        {"ALL-CAPS", "all-caps"},
    }
    for _, tc := range cases {
        if got := Slugify(tc.in); got != tc.want {
            t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
        }
    }
}

func TestImageFileName(t *testing.T) {
    name, err := ImageFileName("Intercity Express", "photo.PNG")
    if err != nil {
        t.Fatal(err)
    }
    if !strings.HasPrefix(name, "intercity-express-") {
        t.Fatalf("missing slug prefix: %q", name)
    }
    if !strings.HasSuffix(name, ".png") {
        t.Fatalf("extension not lowercased: %q", name)
    }

    // a name with no usable characters falls back to a generic slug
    name, err = ImageFileName("***", "x.jpg")
    if err != nil {
        t.Fatal(err)
    }
    if !strings.HasPrefix(name, "train-") {
        t.Fatalf("missing fallback slug: %q", name)
    }
}

func TestRefreshTokenHashing(t *testing.T) {
    tok, err := NewRefreshToken(7)
    if err != nil {
        t.Fatal(err)
    }
    if len(tok.Raw) != 96 {
        t.Fatalf("raw token length = %d, want 96", len(tok.Raw))
    }
    h1 := HashRefreshRaw(tok.Raw)
    h2 := HashRefreshRaw(tok.Raw)
    if h1 != h2 {
        t.Fatal("hash not deterministic")
    }
    if len(h1) != 64 {
        t.Fatalf("hash length = %d, want 64", len(h1))
    }
}

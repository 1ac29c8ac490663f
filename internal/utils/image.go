package utils

import (
    "errors"
    "net/http"
    "path/filepath"
    "strings"
)

// ErrNotAnImage is returned when an uploaded payload does not sniff as
// an image format.
var ErrNotAnImage = errors.New("uploaded file is not an image")

// DetectImage sniffs the content type of an uploaded payload and
// verifies it is an image. Sniffing the bytes rather than trusting the
// file extension means a renamed .txt cannot slip through. At most the
// first 512 bytes are inspected.
func DetectImage(data []byte) (string, error) {
    head := data
    if len(head) > 512 {
        head = head[:512]
    }
    ctype := http.DetectContentType(head)
    if !strings.HasPrefix(ctype, "image/") {
        return "", ErrNotAnImage
    }
    return ctype, nil
}

// ImageFileName builds a collision-free file name for an uploaded
// image: the slugified owner name, a random hex suffix and the
// original extension (lowercased). Example: intercity-express-3f9a…c2.png
func ImageFileName(ownerName, originalName string) (string, error) {
    suffix, err := RandomHex(8)
    if err != nil {
        return "", err
    }
    ext := strings.ToLower(filepath.Ext(originalName))
    slug := Slugify(ownerName)
    if slug == "" {
        slug = "train"
    }
    return slug + "-" + suffix + ext, nil
}

// Slugify lowercases a name and replaces every run of
// non-alphanumeric characters with a single hyphen.
func Slugify(s string) string {
    var b strings.Builder
    lastHyphen := true // suppress a leading hyphen
    for _, r := range strings.ToLower(s) {
        switch {
        case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
            b.WriteRune(r)
            lastHyphen = false
        default:
            if !lastHyphen {
                b.WriteByte('-')
                lastHyphen = true
            }
        }
    }
    return strings.TrimSuffix(b.String(), "-")
}

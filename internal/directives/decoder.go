package directives

import (
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// NewPermissiveReader wraps reader so that UTF-8 and UTF-16 byte-order marks
// select the decoding and are stripped, and invalid UTF-8 sequences become
// U+FFFD instead of failing the read.
func NewPermissiveReader(reader io.Reader) io.Reader {
	return transform.NewReader(reader, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}

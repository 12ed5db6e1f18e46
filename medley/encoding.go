package medley

import (
	"bytes"
	"fmt"
	"regexp"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var latin1Encoding = regexp.MustCompile(`(?i)encoding\s*=\s*["'](iso-8859-1|latin-?1)["']`)

// ToUTF8 converts a document served as ISO-8859-1 to UTF-8 and rewrites the
// encoding of its XML declaration to match. UTF-8 input without a Latin-1
// declaration is returned unchanged.
func ToUTF8(content []byte) ([]byte, error) {
	declEnd := declarationEnd(content)
	latin1 := latin1Encoding.Match(content[:declEnd])
	if !latin1 && utf8.Valid(content) {
		return content, nil
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(content)
	if err != nil {
		return nil, fmt.Errorf("decoding ISO-8859-1: %w", err)
	}
	declEnd = declarationEnd(decoded)
	if declEnd == 0 {
		return decoded, nil
	}
	decl := latin1Encoding.ReplaceAll(decoded[:declEnd], []byte(`encoding="UTF-8"`))
	out := make([]byte, 0, len(decoded)+len(decl)-declEnd)
	out = append(out, decl...)
	return append(out, decoded[declEnd:]...), nil
}

// declarationEnd is the offset just past the XML declaration, zero without
// one.
func declarationEnd(content []byte) int {
	trimmed := bytes.TrimLeft(content, " \t\r\n\ufeff")
	if !bytes.HasPrefix(trimmed, []byte("<?xml")) {
		return 0
	}
	end := bytes.Index(content, []byte("?>"))
	if end < 0 {
		return 0
	}
	return end + len("?>")
}

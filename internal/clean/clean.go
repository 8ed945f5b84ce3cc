// Package clean normalizes raw source text: byte decoding, HTML removal,
// encoding repair and whitespace collapsing. Every function is total and
// never returns an error; malformed input degrades to best-effort output.
package clean

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]+>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// DecodeBytes converts raw bytes to a string. Valid UTF-8 passes through
// unchanged; anything else is decoded as ISO-8859-1, which maps every byte
// to a code point and therefore cannot fail.
func DecodeBytes(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	if utf8.Valid(raw) {
		return string(raw)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		// ISO-8859-1 decoding is total; keep the raw bytes if it
		// somehow fails anyway.
		return string(raw)
	}
	return string(decoded)
}

// StripTags turns an HTML fragment into plain text: encoding repair, entity
// unescaping, tag removal and whitespace collapsing, in that order.
// Empty input yields an empty string.
func StripTags(s string) string {
	if s == "" {
		return ""
	}
	s = RepairEncoding(s)
	s = html.UnescapeString(s)
	// Tags are removed, not replaced with a space, so inline markup
	// inside a word ("<b>E</b>spaña") does not split the word. Block
	// elements still separate because source newlines collapse below.
	s = tagPattern.ReplaceAllString(s, "")
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// RepairEncoding fixes the common mojibake where UTF-8 bytes were read as
// ISO-8859-1 (e.g. "participaciÃ³n"). Each rune at or below 0xFF is folded
// back to its byte; if the resulting sequence is valid UTF-8 it replaces
// the input, otherwise the input is returned unchanged.
func RepairEncoding(s string) string {
	if !looksMojibake(s) {
		return s
	}
	buf := make([]byte, 0, len(s))
	for _, r := range s {
		if r > 0xFF {
			// A rune outside Latin-1 means the text was not a
			// byte-for-byte misread; leave it alone.
			return s
		}
		buf = append(buf, byte(r))
	}
	if !utf8.Valid(buf) {
		return s
	}
	return string(buf)
}

// looksMojibake reports whether s carries the UTF-8-read-as-Latin-1
// signature: a lead byte character (Â, Ã, å range) followed by a
// continuation-range character.
func looksMojibake(s string) bool {
	runes := []rune(s)
	for i := 0; i+1 < len(runes); i++ {
		if runes[i] >= 0xC2 && runes[i] <= 0xF4 && runes[i+1] >= 0x80 && runes[i+1] <= 0xBF {
			return true
		}
	}
	return false
}

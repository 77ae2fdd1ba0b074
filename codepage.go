// Legacy single-byte codepages and the detection chain.
//
// Plugin text was authored in whatever regional codepage the tool of the day
// used. Three are supported. When a string does not fit the active codepage,
// the detection chain tries the others in a fixed priority order, guided by
// two character-set heuristics (Cyrillic block, curated Central European
// letters).
package tes3

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Codepage identifies one of the supported legacy tables. The zero value is
// Windows-1252.
type Codepage uint8

// Supported codepages.
const (
	Windows1252 Codepage = iota // Western European (default)
	Windows1250                 // Central European
	Windows1251                 // Cyrillic
)

var codepages = [...]struct {
	name  string
	table *charmap.Charmap
}{
	Windows1252: {"windows-1252", charmap.Windows1252},
	Windows1250: {"windows-1250", charmap.Windows1250},
	Windows1251: {"windows-1251", charmap.Windows1251},
}

// ParseCodepage resolves a codepage by name. Accepted forms are
// "windows-1252", "cp1252" and "1252" (any case), and likewise for 1250
// and 1251.
func ParseCodepage(name string) (Codepage, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.TrimPrefix(s, "windows-")
	s = strings.TrimPrefix(s, "cp")
	switch s {
	case "1252":
		return Windows1252, nil
	case "1250":
		return Windows1250, nil
	case "1251":
		return Windows1251, nil
	}
	return Windows1252, ErrUnknownCodepage
}

// Valid reports whether cp is one of the supported constants.
func (cp Codepage) Valid() bool {
	return int(cp) < len(codepages)
}

// Name returns the WHATWG label of the codepage, e.g. "windows-1252".
func (cp Codepage) Name() string {
	if !cp.Valid() {
		return "unknown"
	}
	return codepages[cp].name
}

func (cp Codepage) String() string {
	return cp.Name()
}

// MarshalText implements encoding.TextMarshaler.
func (cp Codepage) MarshalText() ([]byte, error) {
	if !cp.Valid() {
		return nil, ErrUnknownCodepage
	}
	return []byte(cp.Name()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (cp *Codepage) UnmarshalText(b []byte) error {
	v, err := ParseCodepage(string(b))
	if err != nil {
		return err
	}
	*cp = v
	return nil
}

// table returns nil for an unsupported codepage.
func (cp Codepage) table() *charmap.Charmap {
	if !cp.Valid() {
		return nil
	}
	return codepages[cp].table
}

// CanEncode reports whether every character of text has a byte in cp.
// Text that is not valid UTF-8 is never encodable, and nothing is
// encodable in an unsupported codepage.
func (cp Codepage) CanEncode(text string) bool {
	t := cp.table()
	if t == nil {
		return false
	}
	for _, r := range text {
		if r == utf8.RuneError {
			return false
		}
		if _, ok := t.EncodeRune(r); !ok {
			return false
		}
	}
	return true
}

// Encode converts text to cp. It fails with ErrEncode if any character is
// unrepresentable. The result is cut at the first zero byte, if any, so an
// embedded NUL acts as the terminator.
func (cp Codepage) Encode(text string) ([]byte, error) {
	if !cp.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCodepage, uint8(cp))
	}
	b, ok := cp.appendEncoded(make([]byte, 0, len(text)), text)
	if !ok {
		return nil, encodeError(text, cp)
	}
	return truncateAtZero(b), nil
}

// Decode converts bytes in cp back to UTF-8. An unsupported codepage
// decodes as Windows-1252, the same table NewWriterCodepage falls back to.
func (cp Codepage) Decode(b []byte) string {
	t := cp.table()
	if t == nil {
		t = charmap.Windows1252
	}
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		sb.WriteRune(t.DecodeByte(c))
	}
	return sb.String()
}

func (cp Codepage) appendEncoded(dst []byte, text string) ([]byte, bool) {
	t := cp.table()
	if t == nil {
		return dst, false
	}
	for _, r := range text {
		if r == utf8.RuneError {
			return dst, false
		}
		c, ok := t.EncodeRune(r)
		if !ok {
			return dst, false
		}
		dst = append(dst, c)
	}
	return dst, true
}

func truncateAtZero(b []byte) []byte {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return b[:i]
	}
	return b
}

// candidate is one step of the detection chain: cp is tried only when the
// predicate accepts the text.
type candidate struct {
	cp   Codepage
	when func(string) bool
}

// fallbackChain is walked in order after the active codepage has failed.
var fallbackChain = []candidate{
	{Windows1252, anyText},
	{Windows1251, hasCyrillic},
	{Windows1250, hasCentralEuropean},
	{Windows1250, anyText},
	{Windows1251, anyText},
}

func anyText(string) bool { return true }

// hasCyrillic reports whether text contains a character of the Cyrillic
// block, U+0400 to U+04FF.
func hasCyrillic(text string) bool {
	for _, r := range text {
		if r >= 0x0400 && r <= 0x04FF {
			return true
		}
	}
	return false
}

// centralEuropean is the fixed set of letters that marks text as Central
// European. It must not be widened: plugins were classified with exactly
// this list.
const centralEuropean = "" +
	"ĄąĆćĘęŁłŃńÓóŚśŹźŻż" + // Polish
	"ČčĎďĚěŇňŘřŠšŤťŮů" + // Czech
	"ĽľŔŕ" + // Slovak
	"ŐőŰű" + // Hungarian
	"Đđ" // Croatian/Serbian Latin

func hasCentralEuropean(text string) bool {
	return strings.ContainsAny(text, centralEuropean)
}

// DetectCodepage returns the codepage that should be used for text, starting
// from active. The active codepage wins if it is lossless; otherwise the
// fallback chain decides; an unsupported active codepage is never
// lossless. If no table can hold text, Windows-1252 is
// returned anyway and the caller must check CanEncode if loss matters.
func DetectCodepage(active Codepage, text string) Codepage {
	if active.CanEncode(text) {
		return active
	}
	return detect(text)
}

// detect walks the fallback chain alone, without preferring any active
// codepage.
func detect(text string) Codepage {
	for _, c := range fallbackChain {
		if c.when(text) && c.cp.CanEncode(text) {
			return c.cp
		}
	}
	return Windows1252
}

// BestFit encodes text with the first lossless codepage, trying active
// first and then the fallback chain (skipping active). Unlike
// DetectCodepage it fails with ErrEncode rather than settling for a lossy
// table. An unsupported active codepage fails with ErrUnknownCodepage.
func BestFit(active Codepage, text string) ([]byte, Codepage, error) {
	if !active.Valid() {
		return nil, active, fmt.Errorf("%w: %d", ErrUnknownCodepage, uint8(active))
	}
	if b, ok := active.appendEncoded(nil, text); ok {
		return truncateAtZero(b), active, nil
	}
	for _, c := range fallbackChain {
		if c.cp == active || !c.when(text) {
			continue
		}
		if b, ok := c.cp.appendEncoded(nil, text); ok {
			return truncateAtZero(b), c.cp, nil
		}
	}
	return nil, active, fmt.Errorf("%w: cannot encode %q with windows-1252, windows-1250 or windows-1251", ErrEncode, text)
}

func encodeError(text string, cp Codepage) error {
	return fmt.Errorf("%w with %s: %q", ErrEncode, cp.Name(), text)
}

// Writer: the append-only serialization sink.
//
// Every record of a plugin is written through one Writer. The buffer only
// grows; when a write fails part way, bytes appended before the failure stay
// in place. Strings go through the active codepage. Only SaveStringAuto and
// AutoSetCodepage change that codepage implicitly.
package tes3

import (
	"fmt"
)

// Saver is implemented by every type that can write its own binary layout.
type Saver interface {
	Save(w *Writer) error
}

// Writer accumulates the binary form of a plugin.
type Writer struct {
	buf      []byte
	codepage Codepage
	log      *Logger

	// Context is scratch space for Save implementations that need to patch
	// cross references (e.g. remember the offset of a field keyed by
	// RefKey). The Writer never touches it.
	Context map[uint64]uint64
}

// NewWriter creates a Writer appending to buf, using Windows-1252.
func NewWriter(buf []byte) *Writer {
	return NewWriterCodepage(buf, Windows1252)
}

// NewWriterCodepage creates a Writer appending to buf with the given
// starting codepage. An unsupported codepage falls back to Windows-1252.
func NewWriterCodepage(buf []byte, cp Codepage) *Writer {
	if !cp.Valid() {
		cp = Windows1252
	}
	return &Writer{
		buf:      buf,
		codepage: cp,
		Context:  make(map[uint64]uint64),
	}
}

// NewWriter1252 creates a Writer using Windows-1252 (Western European).
func NewWriter1252(buf []byte) *Writer { return NewWriterCodepage(buf, Windows1252) }

// NewWriter1250 creates a Writer using Windows-1250 (Central European).
func NewWriter1250(buf []byte) *Writer { return NewWriterCodepage(buf, Windows1250) }

// NewWriter1251 creates a Writer using Windows-1251 (Cyrillic).
func NewWriter1251(buf []byte) *Writer { return NewWriterCodepage(buf, Windows1251) }

// SetLogger attaches a logger for codepage transitions. Nil disables logging.
func (w *Writer) SetLogger(l *Logger) {
	w.log = l
}

// Bytes returns the written bytes. The slice aliases the internal buffer
// until the next write.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written, which is also the append offset.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Reset empties the buffer and the context, keeping capacity and codepage.
func (w *Writer) Reset() {
	w.buf = w.buf[:0]
	clear(w.Context)
}

// Write implements io.Writer. It never fails.
func (w *Writer) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	return len(p), nil
}

// SetCodepage makes cp the active codepage. Unsupported values are ignored.
func (w *Writer) SetCodepage(cp Codepage) {
	if cp.Valid() {
		w.codepage = cp
	}
}

// Codepage returns the active codepage.
func (w *Writer) Codepage() Codepage {
	return w.codepage
}

// CodepageName returns the name of the active codepage.
func (w *Writer) CodepageName() string {
	return w.codepage.Name()
}

// CanEncode reports whether the active codepage holds text without loss.
func (w *Writer) CanEncode(text string) bool {
	return w.codepage.CanEncode(text)
}

// Save writes v by delegating to its own Save method.
func (w *Writer) Save(v Saver) error {
	return v.Save(w)
}

// SaveBytes appends b verbatim, without a length prefix.
func (w *Writer) SaveBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

// SaveString writes text with the active codepage and fails with ErrEncode
// if the codepage cannot hold it. No other codepage is tried.
func (w *Writer) SaveString(text string) error {
	if text == "" {
		w.saveEmptyString()
		return nil
	}
	b, ok := w.codepage.appendEncoded(nil, text)
	if !ok {
		return encodeError(text, w.codepage)
	}
	return w.saveEncoded(truncateAtZero(b))
}

// SaveStringAuto writes text with the best codepage for it: the active one
// if lossless, otherwise the first lossless entry of the fallback chain.
// When that differs from the active codepage the Writer switches to it, and
// the switch sticks for later writes. It fails with ErrEncode, leaving the
// codepage unchanged, only when no supported codepage can hold text.
func (w *Writer) SaveStringAuto(text string) error {
	if text == "" {
		w.saveEmptyString()
		return nil
	}
	cp := DetectCodepage(w.codepage, text)
	b, ok := cp.appendEncoded(nil, text)
	if !ok {
		return fmt.Errorf("%w: cannot encode %q with any supported codepage", ErrEncode, text)
	}
	if cp != w.codepage {
		w.log.orNoop().Debug("codepage changed", "from", w.codepage.Name(), "to", cp.Name())
		w.codepage = cp
	}
	return w.saveEncoded(truncateAtZero(b))
}

// saveEncoded writes an already encoded, already truncated string: length
// including the terminator, the bytes, then the terminator.
func (w *Writer) saveEncoded(b []byte) error {
	if err := PutAs[uint32](w, len(b)+1); err != nil {
		return err
	}
	w.SaveBytes(b)
	Put(w, uint8(0))
	return nil
}

func (w *Writer) saveEmptyString() {
	Put(w, uint32(1))
	Put(w, uint8(0))
}

// Encode returns text in the active codepage, cut at the first embedded
// zero, without writing anything.
func (w *Writer) Encode(text string) ([]byte, error) {
	return w.codepage.Encode(text)
}

// EncodeBestFit returns text encoded with the first lossless codepage of the
// detection chain, and that codepage. The Writer is not changed.
func (w *Writer) EncodeBestFit(text string) ([]byte, Codepage, error) {
	return BestFit(w.codepage, text)
}

// DetectCodepage returns the codepage SaveStringAuto would pick for text.
// The Writer is not changed.
func (w *Writer) DetectCodepage(text string) Codepage {
	return DetectCodepage(w.codepage, text)
}

// AutoSetCodepage picks a codepage for text from the fallback chain alone,
// ignoring the active one, makes it active and returns it. When nothing
// fits, Windows-1252 becomes active.
func (w *Writer) AutoSetCodepage(text string) Codepage {
	cp := detect(text)
	if cp != w.codepage {
		w.log.orNoop().Debug("codepage set", "from", w.codepage.Name(), "to", cp.Name())
	}
	w.codepage = cp
	return cp
}

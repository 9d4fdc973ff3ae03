package cbor

import (
	"encoding/binary"
	"fmt"
	"io"
)

// CBOR major types used by the key wire format.
const (
	majorUint  = 0
	majorBytes = 2
	majorArray = 4
)

// maxBytesLen caps byte-string payloads before they are read, so a hostile
// length prefix cannot force a large allocation. Key material never exceeds
// 64 bytes; the cap leaves generous headroom.
const maxBytesLen = 4096

// Encoder writes wire primitives to an underlying stream.
type Encoder struct {
	w io.Writer
}

func NewEncoder(w io.Writer) *Encoder { return &Encoder{w: w} }

// Array writes a definite-length array header for n elements.
func (e *Encoder) Array(n int) error {
	return e.writeHead(majorArray, uint64(n))
}

// UInt16 writes v with the two-byte argument form (0x19 hi lo). The width is
// fixed rather than minimal so every writer produces identical bytes for the
// same value.
func (e *Encoder) UInt16(v uint16) error {
	var buf [3]byte
	buf[0] = majorUint<<5 | 25
	binary.BigEndian.PutUint16(buf[1:], v)
	_, err := e.w.Write(buf[:])
	return err
}

// Bytes writes b as a definite-length byte string.
func (e *Encoder) Bytes(b []byte) error {
	if err := e.writeHead(majorBytes, uint64(len(b))); err != nil {
		return err
	}
	_, err := e.w.Write(b)
	return err
}

func (e *Encoder) writeHead(major byte, arg uint64) error {
	var buf [9]byte
	switch {
	case arg < 24:
		buf[0] = major<<5 | byte(arg)
		_, err := e.w.Write(buf[:1])
		return err
	case arg <= 0xFF:
		buf[0] = major<<5 | 24
		buf[1] = byte(arg)
		_, err := e.w.Write(buf[:2])
		return err
	case arg <= 0xFFFF:
		buf[0] = major<<5 | 25
		binary.BigEndian.PutUint16(buf[1:], uint16(arg))
		_, err := e.w.Write(buf[:3])
		return err
	case arg <= 0xFFFFFFFF:
		buf[0] = major<<5 | 26
		binary.BigEndian.PutUint32(buf[1:], uint32(arg))
		_, err := e.w.Write(buf[:5])
		return err
	default:
		buf[0] = major<<5 | 27
		binary.BigEndian.PutUint64(buf[1:], arg)
		_, err := e.w.Write(buf[:9])
		return err
	}
}

// Decoder reads wire primitives from an underlying stream.
type Decoder struct {
	r io.Reader
}

func NewDecoder(r io.Reader) *Decoder { return &Decoder{r: r} }

// Array reads a definite-length array header and returns its element count.
func (d *Decoder) Array() (int, error) {
	n, err := d.readHead(majorArray)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// UInt16 reads an unsigned integer that must fit in 16 bits. Minimally
// encoded input from other writers is accepted alongside the fixed-width
// form the Encoder emits.
func (d *Decoder) UInt16() (uint16, error) {
	n, err := d.readHead(majorUint)
	if err != nil {
		return 0, err
	}
	if n > 0xFFFF {
		return 0, fmt.Errorf("cbor: unsigned value %d overflows uint16", n)
	}
	return uint16(n), nil
}

// Bytes reads a definite-length byte string.
func (d *Decoder) Bytes() ([]byte, error) {
	n, err := d.readHead(majorBytes)
	if err != nil {
		return nil, err
	}
	if n > maxBytesLen {
		return nil, fmt.Errorf("cbor: byte string of %d bytes exceeds limit", n)
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(d.r, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (d *Decoder) readHead(want byte) (uint64, error) {
	var hd [1]byte
	if _, err := io.ReadFull(d.r, hd[:]); err != nil {
		return 0, err
	}
	major := hd[0] >> 5
	if major != want {
		return 0, fmt.Errorf("cbor: expected major type %d, got %d", want, major)
	}
	info := hd[0] & 0x1F
	switch {
	case info < 24:
		return uint64(info), nil
	case info == 24:
		var b [1]byte
		if _, err := io.ReadFull(d.r, b[:]); err != nil {
			return 0, err
		}
		return uint64(b[0]), nil
	case info == 25:
		var b [2]byte
		if _, err := io.ReadFull(d.r, b[:]); err != nil {
			return 0, err
		}
		return uint64(binary.BigEndian.Uint16(b[:])), nil
	case info == 26:
		var b [4]byte
		if _, err := io.ReadFull(d.r, b[:]); err != nil {
			return 0, err
		}
		return uint64(binary.BigEndian.Uint32(b[:])), nil
	case info == 27:
		var b [8]byte
		if _, err := io.ReadFull(d.r, b[:]); err != nil {
			return 0, err
		}
		return binary.BigEndian.Uint64(b[:]), nil
	case info == 31:
		return 0, fmt.Errorf("cbor: indefinite lengths are not supported")
	default:
		return 0, fmt.Errorf("cbor: malformed additional information %d", info)
	}
}

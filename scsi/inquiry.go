// Copyright 2026 The go-scsi authors. All rights reserved.
// Use of this source code is governed by an MIT license that can be found in the LICENSE file.

// Fixed-layout INQUIRY response parsing: the standard 96-byte page and the
// unit serial number VPD page (0x80).

package scsi

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// StdInquiry is a decoded standard INQUIRY response. The underlying buffer is
// copied at parse time and read-only thereafter; accessors extract bit fields
// per SPC-4 6.6.2.
type StdInquiry struct {
	buf [INQ_REPLY_LEN]byte
}

// ParseStdInquiry validates and wraps a populated standard INQUIRY response
// buffer. Only response data format 2 is supported.
func ParseStdInquiry(buf []byte) (*StdInquiry, error) {
	if len(buf) < INQ_REPLY_LEN {
		return nil, errors.Wrapf(ErrTruncated, "standard INQUIRY response is %d bytes, need %d",
			len(buf), INQ_REPLY_LEN)
	}

	inq := &StdInquiry{}
	copy(inq.buf[:], buf)

	if rdf := inq.ResponseDataFormat(); rdf != 2 {
		return nil, errors.Wrapf(ErrUnsupportedFormat, "response data format %d", rdf)
	}

	return inq, nil
}

func (inq *StdInquiry) PeripheralQualifier() PeripheralQualifier {
	return ParsePeripheralQualifier(inq.buf[0] >> 5)
}

func (inq *StdInquiry) PeripheralDeviceType() PeripheralDeviceType {
	return ParsePeripheralDeviceType(inq.buf[0] & 0x1f)
}

// RMB reports whether the medium is removable.
func (inq *StdInquiry) RMB() bool { return inq.buf[1]&0x80 != 0 }

// LUCong reports whether the logical unit is part of a conglomerate.
func (inq *StdInquiry) LUCong() bool { return inq.buf[1]&0x40 != 0 }

// Version returns the claimed SPC compliance version code.
func (inq *StdInquiry) Version() uint8 { return inq.buf[2] }

func (inq *StdInquiry) NormACA() bool { return inq.buf[3]&0x20 != 0 }
func (inq *StdInquiry) HiSup() bool   { return inq.buf[3]&0x10 != 0 }

func (inq *StdInquiry) ResponseDataFormat() uint8 { return inq.buf[3] & 0x0f }

func (inq *StdInquiry) SCCS() bool    { return inq.buf[5]&0x80 != 0 }
func (inq *StdInquiry) ACC() bool     { return inq.buf[5]&0x40 != 0 }
func (inq *StdInquiry) TPGS() uint8   { return (inq.buf[5] >> 4) & 0x3 }
func (inq *StdInquiry) ThreePC() bool { return inq.buf[5]&0x08 != 0 }
func (inq *StdInquiry) Protect() bool { return inq.buf[5]&0x01 != 0 }
func (inq *StdInquiry) EncServ() bool { return inq.buf[6]&0x40 != 0 }
func (inq *StdInquiry) MultiP() bool  { return inq.buf[6]&0x10 != 0 }
func (inq *StdInquiry) Addr16() bool  { return inq.buf[6]&0x01 != 0 }
func (inq *StdInquiry) WBus16() bool  { return inq.buf[7]&0x20 != 0 }
func (inq *StdInquiry) Sync() bool    { return inq.buf[7]&0x10 != 0 }
func (inq *StdInquiry) CmdQue() bool  { return inq.buf[7]&0x02 != 0 }

// Vendor returns the 8-byte T10 vendor identification field, space padding
// included.
func (inq *StdInquiry) Vendor() (string, error) { return textField(inq.buf[8:16]) }

// Product returns the 16-byte product identification field.
func (inq *StdInquiry) Product() (string, error) { return textField(inq.buf[16:32]) }

// Revision returns the 4-byte product revision field.
func (inq *StdInquiry) Revision() (string, error) { return textField(inq.buf[32:36]) }

// textField decodes a fixed-width identification field. SCSI specifies these
// as ASCII, so invalid UTF-8 indicates a misbehaving device; it is reported
// rather than silently substituted.
func textField(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", errors.Wrapf(ErrTextDecode, "field %q", b)
	}
	return string(b), nil
}

// UnitSerialPage is a decoded unit serial number VPD page (0x80).
type UnitSerialPage struct {
	buf []byte
}

// ParseUnitSerialPage validates and wraps a populated VPD 0x80 response
// buffer.
func ParseUnitSerialPage(buf []byte) (*UnitSerialPage, error) {
	if len(buf) < 4 {
		return nil, errors.Wrapf(ErrTruncated, "unit serial number page header is %d bytes", len(buf))
	}
	if buf[1] != VPD_UNIT_SERIAL {
		return nil, errors.Wrapf(ErrMalformedResponse, "unexpected page code %#02x", buf[1])
	}

	return &UnitSerialPage{buf: append([]byte(nil), buf...)}, nil
}

func (p *UnitSerialPage) PeripheralQualifier() PeripheralQualifier {
	return ParsePeripheralQualifier(p.buf[0] >> 5)
}

func (p *UnitSerialPage) PeripheralDeviceType() PeripheralDeviceType {
	return ParsePeripheralDeviceType(p.buf[0] & 0x1f)
}

// SerialNumber returns the product serial number text. The declared length is
// bound-checked against the buffer before slicing; a length pointing past the
// end is an error, not a panic.
func (p *UnitSerialPage) SerialNumber() (string, error) {
	n := int(binary.BigEndian.Uint16(p.buf[2:4]))
	if 4+n > len(p.buf) {
		return "", errors.Wrapf(ErrTruncated, "serial number length %d exceeds %d byte page",
			n, len(p.buf))
	}
	return textField(p.buf[4 : 4+n])
}

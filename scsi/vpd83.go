// Copyright 2026 The go-scsi authors. All rights reserved.
// Use of this source code is governed by an MIT license that can be found in the LICENSE file.

// Device identification VPD page (0x83) parsing. The page is a 4-byte header
// followed by a length-prefixed sequence of designation descriptors, each a
// self-describing TLV record.

package scsi

import (
	"bytes"
	"encoding/binary"
	"strings"

	"github.com/pkg/errors"
)

// Code set values from byte 0 of a designation descriptor. ASCII and UTF-8
// designators carry text; everything else is treated as opaque binary.
const (
	codeSetASCII = 2
	codeSetUTF8  = 3
)

// DeviceIDPage is a decoded device identification VPD page.
type DeviceIDPage struct {
	Qualifier  PeripheralQualifier
	DeviceType PeripheralDeviceType

	// Designators preserves the order of appearance on the wire. Later
	// descriptors do not override earlier ones; callers decide which
	// type/association combination they care about.
	Designators []Designator
}

// Designator is a single designation descriptor.
type Designator struct {
	Protocol    ProtocolIdentifier
	Association Association
	Type        DesignatorType
	Value       DesignatorValue
}

// DesignatorValue is the payload of a designation descriptor: either
// BinaryDesignator or TextDesignator. Whether a payload is text is
// semantically load-bearing, so the two are distinct types rather than a
// shared container.
type DesignatorValue interface {
	designatorValue()
}

// BinaryDesignator is an opaque identifier, owned independently of the
// response buffer it was parsed from.
type BinaryDesignator []byte

func (BinaryDesignator) designatorValue() {}

// TextDesignator is a textual identifier (ASCII or UTF-8 code sets).
type TextDesignator string

func (TextDesignator) designatorValue() {}

// ParseDeviceIDPage decodes a populated VPD 0x83 response buffer. Parsing is
// all-or-nothing: any structural violation (wrong page code, a length field
// pointing past the available bytes, a truncated descriptor) aborts the whole
// parse and no partial page is returned.
func ParseDeviceIDPage(buf []byte) (*DeviceIDPage, error) {
	if len(buf) < 4 {
		return nil, errors.Wrapf(ErrTruncated, "device identification page header is %d bytes", len(buf))
	}
	if buf[1] != VPD_DEVICE_ID {
		return nil, errors.Wrapf(ErrMalformedResponse, "unexpected page code %#02x", buf[1])
	}

	page := &DeviceIDPage{
		Qualifier:  ParsePeripheralQualifier(buf[0] >> 5),
		DeviceType: ParsePeripheralDeviceType(buf[0] & 0x1f),
	}

	n := int(binary.BigEndian.Uint16(buf[2:4]))
	if 4+n > len(buf) {
		return nil, errors.Wrapf(ErrTruncated, "descriptor region is %d bytes, %d available",
			n, len(buf)-4)
	}

	// Zero or more descriptors until the region is exhausted; an empty
	// region is a valid page with no designators.
	region := buf[4 : 4+n]
	for len(region) > 0 {
		desc, consumed, err := parseDesignator(region)
		if err != nil {
			return nil, err
		}
		page.Designators = append(page.Designators, desc)
		region = region[consumed:]
	}

	return page, nil
}

// parseDesignator decodes a single designation descriptor from the front of
// b, returning the number of bytes consumed.
func parseDesignator(b []byte) (Designator, int, error) {
	if len(b) < 4 {
		return Designator{}, 0, errors.Wrapf(ErrTruncated, "designation descriptor header is %d bytes", len(b))
	}

	length := int(b[3])
	if 4+length > len(b) {
		return Designator{}, 0, errors.Wrapf(ErrTruncated, "designator length %d with %d bytes remaining",
			length, len(b)-4)
	}

	piv := b[1]&0x80 != 0
	assoc := ParseAssociation((b[1] >> 4) & 0x3)

	desc := Designator{
		Protocol:    ParseProtocolIdentifier(b[0]>>4, assoc, piv),
		Association: assoc,
		Type:        ParseDesignatorType(b[1] & 0x0f),
	}

	payload := b[4 : 4+length]
	switch b[0] & 0x0f {
	case codeSetASCII, codeSetUTF8:
		desc.Value = TextDesignator(decodeDesignatorText(payload))
	default:
		desc.Value = BinaryDesignator(append([]byte(nil), payload...))
	}

	return desc, 4 + length, nil
}

// decodeDesignatorText decodes device-reported identification text: NUL
// terminated if a NUL is present, with invalid sequences replaced rather than
// rejected. Free-form device text is not trusted to be clean.
func decodeDesignatorText(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return strings.ToValidUTF8(string(b), "�")
}

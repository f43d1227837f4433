// Copyright 2026 The go-scsi authors. All rights reserved.
// Use of this source code is governed by an MIT license that can be found in the LICENSE file.

// SCSI command definitions and CDB builders.

package scsi

const (
	// SCSI commands used by this package
	SCSI_INQUIRY = 0x12

	// Length of a standard INQUIRY response
	INQ_REPLY_LEN = 96

	// VPD pages decoded by this package
	VPD_UNIT_SERIAL = 0x80
	VPD_DEVICE_ID   = 0x83

	// Response buffer sizes for the VPD pages. The true response length is
	// unknown until the page header is parsed, so the device identification
	// buffer is generously sized.
	SERIAL_REPLY_LEN    = 252
	DEVICE_ID_REPLY_LEN = 1024
)

// CDB6 is a 6-byte SCSI command descriptor block
type CDB6 [6]byte

// InquiryCDB builds a standard INQUIRY CDB with an 8-bit allocation length.
func InquiryCDB(allocLen uint8) CDB6 {
	return CDB6{SCSI_INQUIRY, 0, 0, 0, allocLen, 0}
}

// VPDInquiryCDB builds an INQUIRY CDB with the EVPD bit set, requesting the
// given VPD page. The allocation length occupies bytes 3-4, big-endian: VPD
// page 0x83 responses can exceed the 255 bytes addressable on the standard
// INQUIRY path.
func VPDInquiryCDB(page uint8, allocLen uint16) CDB6 {
	return CDB6{SCSI_INQUIRY, 1, page, uint8(allocLen >> 8), uint8(allocLen), 0}
}

// Copyright 2026 The go-scsi authors. All rights reserved.
// Use of this source code is governed by an MIT license that can be found in the LICENSE file.

package sgio

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestSgIoHdrSize(t *testing.T) {
	// struct sg_io_hdr is 88 bytes on 64-bit Linux; a size mismatch here
	// would corrupt the ioctl exchange.
	assert.Equal(t, uintptr(88), unsafe.Sizeof(sgIoHdr{}))
}

func TestParseSenseFixedFormat(t *testing.T) {
	assert := assert.New(t)

	// Fixed-format sense: ILLEGAL REQUEST, INVALID FIELD IN CDB
	sb := make([]byte, 18)
	sb[0] = 0x70
	sb[2] = 0x05
	sb[12] = 0x24
	sb[13] = 0x00

	key, asc, ascq := parseSense(sb)
	assert.Equal(uint8(0x05), key)
	assert.Equal(uint8(0x24), asc)
	assert.Equal(uint8(0x00), ascq)

	// Deferred errors (0x71) decode the same way
	sb[0] = 0x71
	key, _, _ = parseSense(sb)
	assert.Equal(uint8(0x05), key)
}

func TestParseSenseUndecodable(t *testing.T) {
	assert := assert.New(t)

	// Descriptor-format sense is not decoded
	sb := make([]byte, 18)
	sb[0] = 0x72
	sb[1] = 0x05

	key, asc, ascq := parseSense(sb)
	assert.Zero(key)
	assert.Zero(asc)
	assert.Zero(ascq)

	// Too short to contain additional sense codes
	key, _, _ = parseSense([]byte{0x70, 0x00, 0x05})
	assert.Zero(key)
}

func TestErrorString(t *testing.T) {
	assert := assert.New(t)

	err := &Error{ScsiStatus: 0x02, HostStatus: 0, DriverStatus: 0x08}
	assert.Equal("SCSI status: 0x02, host status: 0x00, driver status: 0x08", err.Error())

	err.sense = []byte{0x70, 0x00, 0x05, 0x00, 0x00, 0x00, 0x00, 0x0a, 0x00, 0x00, 0x00, 0x00, 0x24, 0x00}
	err.SenseKey, err.Asc, err.Ascq = parseSense(err.sense)
	assert.Contains(err.Error(), "sense key: 0x05")
	assert.Contains(err.Error(), "asc/ascq: 0x24/0x00")
	assert.Equal(err.sense, err.Sense())
}

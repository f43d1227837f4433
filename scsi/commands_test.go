// Copyright 2026 The go-scsi authors. All rights reserved.
// Use of this source code is governed by an MIT license that can be found in the LICENSE file.

package scsi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInquiryCDB(t *testing.T) {
	assert.Equal(t, CDB6{0x12, 0, 0, 0, 96, 0}, InquiryCDB(INQ_REPLY_LEN))
	assert.Equal(t, CDB6{0x12, 0, 0, 0, 0xff, 0}, InquiryCDB(0xff))
}

func TestVPDInquiryCDB(t *testing.T) {
	assert := assert.New(t)

	// 1024 = 0x0400, big-endian across bytes 3-4
	assert.Equal(CDB6{0x12, 1, 0x83, 0x04, 0x00, 0}, VPDInquiryCDB(VPD_DEVICE_ID, 1024))
	assert.Equal(CDB6{0x12, 1, 0x80, 0x00, 0xfc, 0}, VPDInquiryCDB(VPD_UNIT_SERIAL, 252))
}

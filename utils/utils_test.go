// Copyright 2026 The go-scsi authors. All rights reserved.
// Use of this source code is governed by an MIT license that can be found in the LICENSE file.

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexFormat(t *testing.T) {
	assert.Equal(t, "", HexFormat(nil))
	assert.Equal(t, "12", HexFormat([]byte{0x12}))
	assert.Equal(t, "12 01 83 04 00 00", HexFormat([]byte{0x12, 0x01, 0x83, 0x04, 0x00, 0x00}))
}

func TestTrimPadding(t *testing.T) {
	assert.Equal(t, "ATA", TrimPadding("ATA     "))
	assert.Equal(t, "HELLO", TrimPadding("HELLO\x00\x00 "))
	assert.Equal(t, "", TrimPadding("   "))
	assert.Equal(t, "a b", TrimPadding("a b"))
}

// Copyright 2026 The go-scsi authors. All rights reserved.
// Use of this source code is governed by an MIT license that can be found in the LICENSE file.

// Miscellaneous byte and string formatting helpers.

package utils

import (
	"fmt"
	"strings"
)

// HexFormat renders a byte slice as space-separated hex octets, e.g.
// "12 01 83 04 00 00".
func HexFormat(b []byte) string {
	var sb strings.Builder

	for i, c := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02x", c)
	}

	return sb.String()
}

// TrimPadding strips the trailing spaces and NULs with which fixed-width SCSI
// identification fields are padded.
func TrimPadding(s string) string {
	return strings.TrimRight(s, " \x00")
}

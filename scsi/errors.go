// Copyright 2026 The go-scsi authors. All rights reserved.
// Use of this source code is governed by an MIT license that can be found in the LICENSE file.

package scsi

import "github.com/pkg/errors"

// Sentinel errors returned by the response parsers. They are wrapped with
// context at the point of failure; match with errors.Is. Transport failures
// are never remapped onto these - they surface verbatim from the sgio layer.
var (
	// ErrUnsupportedFormat indicates a standard INQUIRY response whose
	// response data format field is not 2 (a legacy or unknown layout this
	// package does not model).
	ErrUnsupportedFormat = errors.New("unsupported INQUIRY response data format")

	// ErrMalformedResponse indicates a protocol violation by the device or
	// transport, such as a VPD page code mismatch.
	ErrMalformedResponse = errors.New("malformed INQUIRY response")

	// ErrTruncated indicates a declared length pointing past the end of the
	// available bytes. Parsing never silently clamps.
	ErrTruncated = errors.New("truncated INQUIRY response")

	// ErrTextDecode indicates a fixed-width identification field containing
	// invalid UTF-8. Variable-length VPD 0x83 text designators are instead
	// decoded lossily, since free-form device text is untrusted display data.
	ErrTextDecode = errors.New("invalid text in INQUIRY field")
)

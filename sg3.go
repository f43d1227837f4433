// Copyright 2026 The go-scsi authors. All rights reserved.
// Use of this source code is governed by an MIT license that can be found in the LICENSE file.

// Package sg3 issues SCSI INQUIRY commands to block devices and decodes the
// responses: the standard INQUIRY page, the unit serial number VPD page
// (0x80) and the device identification VPD page (0x83).
//
// The codec itself performs no I/O. Commands are executed through a Transport
// (typically an sgio.Device), and each operation is a single independent
// request/response exchange: build the CDB, invoke the transport, parse the
// response. No state is retained between calls.
package sg3

import (
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/go-scsi/sg3/scsi"
)

// Transport executes a single SCSI command against a device, filling resp
// with up to len(resp) bytes of response data. Implementations block until
// the exchange completes; any timeout or cancellation policy belongs to the
// transport, not the codec.
type Transport interface {
	Exec(cdb scsi.CDB6, resp []byte) error
}

// Inquiry issues a standard INQUIRY and decodes the 96-byte response. A
// device reporting a response data format other than 2 fails with
// scsi.ErrUnsupportedFormat.
func Inquiry(tr Transport) (*scsi.StdInquiry, error) {
	buf := make([]byte, scsi.INQ_REPLY_LEN)

	if err := tr.Exec(scsi.InquiryCDB(scsi.INQ_REPLY_LEN), buf); err != nil {
		return nil, errors.Wrap(err, "INQUIRY")
	}

	return scsi.ParseStdInquiry(buf)
}

// InquiryVpd80 requests and decodes the unit serial number VPD page.
func InquiryVpd80(tr Transport) (*scsi.UnitSerialPage, error) {
	buf := make([]byte, scsi.SERIAL_REPLY_LEN)

	if err := tr.Exec(scsi.VPDInquiryCDB(scsi.VPD_UNIT_SERIAL, scsi.SERIAL_REPLY_LEN), buf); err != nil {
		return nil, errors.Wrap(err, "INQUIRY VPD page 0x80")
	}

	return scsi.ParseUnitSerialPage(buf)
}

// InquiryVpd83 requests and decodes the device identification VPD page. The
// response can exceed 255 bytes, hence the 16-bit allocation length on this
// path.
func InquiryVpd83(tr Transport) (*scsi.DeviceIDPage, error) {
	buf := make([]byte, scsi.DEVICE_ID_REPLY_LEN)

	if err := tr.Exec(scsi.VPDInquiryCDB(scsi.VPD_DEVICE_ID, scsi.DEVICE_ID_REPLY_LEN), buf); err != nil {
		return nil, errors.Wrap(err, "INQUIRY VPD page 0x83")
	}

	return scsi.ParseDeviceIDPage(buf)
}

// ScanDevices returns candidate SCSI device nodes: sg character devices and
// whole-disk block devices.
func ScanDevices() []string {
	var devices []string

	for _, pattern := range []string{"/dev/sg*", "/dev/sd*[^0-9]"} {
		files, err := filepath.Glob(pattern)
		if err != nil {
			continue
		}
		devices = append(devices, files...)
	}

	return devices
}

// Copyright 2026 The go-scsi authors. All rights reserved.
// Use of this source code is governed by an MIT license that can be found in the LICENSE file.

// SCSI generic (sg) pass-through transport, using the version 3 sg_io_hdr
// interface of the Linux sg driver.

package sgio

import (
	"fmt"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"

	"github.com/go-scsi/sg3/scsi"
	"github.com/go-scsi/sg3/utils"
)

const (
	SG_DXFER_NONE        = -1
	SG_DXFER_TO_DEV      = -2
	SG_DXFER_FROM_DEV    = -3
	SG_DXFER_TO_FROM_DEV = -4

	SG_IO              = 0x2285
	SG_GET_VERSION_NUM = 0x2282

	SG_INFO_OK_MASK = 0x1
	SG_INFO_OK      = 0x0

	// Timeout in milliseconds
	DEFAULT_TIMEOUT = 20000

	senseBufLen = 32
)

// sgIoHdr mirrors struct sg_io_hdr from <scsi/sg.h>.
type sgIoHdr struct {
	interface_id    int32
	dxfer_direction int32
	cmd_len         uint8
	mx_sb_len       uint8
	iovec_count     uint16
	dxfer_len       uint32
	dxferp          uintptr
	cmdp            uintptr // Command pointer
	sbp             uintptr // Sense buf pointer
	timeout         uint32
	flags           uint32
	pack_id         int32
	usr_ptr         uintptr
	status          uint8
	masked_status   uint8
	msg_status      uint8
	sb_len_wr       uint8
	host_status     uint16
	driver_status   uint16
	resid           int32
	duration        uint32
	info            uint32
}

// Error reports a SCSI command that completed with a non-good status,
// including any fixed-format sense data the device returned.
type Error struct {
	ScsiStatus   uint8
	HostStatus   uint16
	DriverStatus uint16
	SenseKey     uint8
	Asc          uint8
	Ascq         uint8

	sense []byte
}

func (e *Error) Error() string {
	if len(e.sense) > 0 {
		return fmt.Sprintf("SCSI status: %#04x, host status: %#04x, driver status: %#04x, sense key: %#04x, asc/ascq: %#04x/%#04x",
			e.ScsiStatus, e.HostStatus, e.DriverStatus, e.SenseKey, e.Asc, e.Ascq)
	}
	return fmt.Sprintf("SCSI status: %#04x, host status: %#04x, driver status: %#04x",
		e.ScsiStatus, e.HostStatus, e.DriverStatus)
}

// Sense returns the raw sense buffer written by the device, if any.
func (e *Error) Sense() []byte { return e.sense }

// Device is an open handle on a Linux SCSI generic or block device node. It
// implements the sg3.Transport interface.
type Device struct {
	Name string
	fd   int
}

// Open opens the named device node and verifies that it is backed by a
// version 3 sg driver.
func Open(name string) (*Device, error) {
	fd, err := unix.Open(name, unix.O_RDWR|unix.O_NONBLOCK, 0600)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open device %s", name)
	}

	var version uint32
	if err := ioctl(uintptr(fd), SG_GET_VERSION_NUM, uintptr(unsafe.Pointer(&version))); err != nil {
		unix.Close(fd)
		return nil, errors.Wrapf(err, "%s does not appear to be an sg device", name)
	}
	if version < 30000 {
		unix.Close(fd)
		return nil, errors.Errorf("%s: sg driver version %d predates the v3 interface", name, version)
	}

	return &Device{Name: name, fd: fd}, nil
}

// Close closes the underlying device node.
func (d *Device) Close() error {
	return unix.Close(d.fd)
}

// Exec sends a single CDB to the device and reads the response into resp.
// Each call is an independent request/response exchange; the device itself
// serializes concurrent commands.
func (d *Device) Exec(cdb scsi.CDB6, resp []byte) error {
	senseBuf := make([]byte, senseBufLen)

	hdr := sgIoHdr{
		interface_id:    'S',
		dxfer_direction: SG_DXFER_FROM_DEV,
		timeout:         DEFAULT_TIMEOUT,
		cmd_len:         uint8(len(cdb)),
		mx_sb_len:       senseBufLen,
		dxfer_len:       uint32(len(resp)),
		dxferp:          uintptr(unsafe.Pointer(&resp[0])),
		cmdp:            uintptr(unsafe.Pointer(&cdb[0])),
		sbp:             uintptr(unsafe.Pointer(&senseBuf[0])),
	}

	logrus.WithFields(logrus.Fields{
		"device": d.Name,
		"cdb":    utils.HexFormat(cdb[:]),
	}).Trace("issuing SG_IO")

	if err := ioctl(uintptr(d.fd), SG_IO, uintptr(unsafe.Pointer(&hdr))); err != nil {
		return errors.Wrapf(err, "SG_IO ioctl on %s", d.Name)
	}

	if hdr.info&SG_INFO_OK_MASK != SG_INFO_OK {
		sgerr := &Error{
			ScsiStatus:   hdr.status,
			HostStatus:   hdr.host_status,
			DriverStatus: hdr.driver_status,
		}
		if hdr.sb_len_wr > 0 {
			sgerr.sense = senseBuf[:hdr.sb_len_wr]
			sgerr.SenseKey, sgerr.Asc, sgerr.Ascq = parseSense(sgerr.sense)
			logrus.WithFields(logrus.Fields{
				"device": d.Name,
				"sense":  utils.HexFormat(sgerr.sense),
			}).Debug("SG_IO check condition")
		}
		return sgerr
	}

	return nil
}

// parseSense extracts the sense key and additional sense codes from a
// fixed-format sense buffer (SPC-4 4.5.3). Descriptor-format sense is left
// undecoded.
func parseSense(sb []byte) (key, asc, ascq uint8) {
	if len(sb) < 14 {
		return
	}

	switch sb[0] & 0x7f {
	case 0x70, 0x71:
		return sb[2] & 0x0f, sb[12], sb[13]
	}

	return
}

// ioctl executes an ioctl command on the specified file descriptor
func ioctl(fd, cmd, ptr uintptr) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, cmd, ptr)
	if errno != 0 {
		return errno
	}
	return nil
}

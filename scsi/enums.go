// Copyright 2026 The go-scsi authors. All rights reserved.
// Use of this source code is governed by an MIT license that can be found in the LICENSE file.

// Enumerated INQUIRY field decoders.
//
// Each decoder is total over its field's bit-width domain: reserved and
// unrecognized codes map to an explicit Reserved (or vendor-specific) variant,
// never to an error. Callers are responsible for shifting and masking the raw
// field out of the response buffer first.

package scsi

// PeripheralQualifier is the 3-bit qualifier from byte 0 of an INQUIRY
// response (SPC-4 table 177).
type PeripheralQualifier uint8

const (
	QualifierConnected PeripheralQualifier = iota
	QualifierNotConnected
	QualifierReserved
	QualifierNotCapable
	QualifierVS
)

func ParsePeripheralQualifier(code uint8) PeripheralQualifier {
	switch code {
	case 0:
		return QualifierConnected
	case 1:
		return QualifierNotConnected
	case 3:
		return QualifierNotCapable
	case 4, 5, 6, 7:
		return QualifierVS
	default:
		// Code 2 is reserved; a 3-bit field cannot exceed 7, but anything
		// unexpected still decodes to Reserved.
		return QualifierReserved
	}
}

func (q PeripheralQualifier) String() string {
	switch q {
	case QualifierConnected:
		return "connected"
	case QualifierNotConnected:
		return "not connected"
	case QualifierNotCapable:
		return "not capable"
	case QualifierVS:
		return "vendor specific"
	default:
		return "reserved"
	}
}

// PeripheralDeviceType is the 5-bit device type from byte 0 of an INQUIRY
// response (SPC-4 table 176).
type PeripheralDeviceType uint8

const (
	DeviceDirectAccess PeripheralDeviceType = iota
	DeviceSequentialAccess
	DevicePrinter
	DeviceProcessor
	DeviceWriteOnce
	DeviceCdDvd
	DeviceOpticalMemory
	DeviceMediaChanger
	DeviceStorageArrayController
	DeviceEnclosureServices
	DeviceSimplifiedDirectAccess
	DeviceOpticalCardReader
	DeviceObjectBasedStorage
	DeviceAutomationDriveInterface
	DeviceObsolete
	DeviceReserved
)

func ParsePeripheralDeviceType(code uint8) PeripheralDeviceType {
	switch code {
	case 0x00:
		return DeviceDirectAccess
	case 0x01:
		return DeviceSequentialAccess
	case 0x02:
		return DevicePrinter
	case 0x03:
		return DeviceProcessor
	case 0x04:
		return DeviceWriteOnce
	case 0x05:
		return DeviceCdDvd
	case 0x06, 0x09, 0x0a, 0x0b:
		return DeviceObsolete
	case 0x07:
		return DeviceOpticalMemory
	case 0x08:
		return DeviceMediaChanger
	case 0x0c:
		return DeviceStorageArrayController
	case 0x0d:
		return DeviceEnclosureServices
	case 0x0e:
		return DeviceSimplifiedDirectAccess
	case 0x0f:
		return DeviceOpticalCardReader
	case 0x11:
		return DeviceObjectBasedStorage
	case 0x12:
		return DeviceAutomationDriveInterface
	default:
		// 0x10, 0x13-0x1d are reserved, 0x1e well-known LU, 0x1f unknown
		return DeviceReserved
	}
}

func (t PeripheralDeviceType) String() string {
	switch t {
	case DeviceDirectAccess:
		return "direct access"
	case DeviceSequentialAccess:
		return "sequential access"
	case DevicePrinter:
		return "printer"
	case DeviceProcessor:
		return "processor"
	case DeviceWriteOnce:
		return "write once"
	case DeviceCdDvd:
		return "CD/DVD"
	case DeviceOpticalMemory:
		return "optical memory"
	case DeviceMediaChanger:
		return "media changer"
	case DeviceStorageArrayController:
		return "storage array controller"
	case DeviceEnclosureServices:
		return "enclosure services"
	case DeviceSimplifiedDirectAccess:
		return "simplified direct access"
	case DeviceOpticalCardReader:
		return "optical card reader/writer"
	case DeviceObjectBasedStorage:
		return "object-based storage"
	case DeviceAutomationDriveInterface:
		return "automation/drive interface"
	case DeviceObsolete:
		return "obsolete"
	default:
		return "reserved"
	}
}

// Association is the 2-bit scope of a designation descriptor (SPC-4 7.8.6.1).
type Association uint8

const (
	AssocAddressedLogicalUnit Association = iota
	AssocTargetPort
	AssocScsiTargetDevice
	AssocReserved
)

func ParseAssociation(code uint8) Association {
	switch code {
	case 0:
		return AssocAddressedLogicalUnit
	case 1:
		return AssocTargetPort
	case 2:
		return AssocScsiTargetDevice
	default:
		return AssocReserved
	}
}

func (a Association) String() string {
	switch a {
	case AssocAddressedLogicalUnit:
		return "addressed logical unit"
	case AssocTargetPort:
		return "target port"
	case AssocScsiTargetDevice:
		return "SCSI target device"
	default:
		return "reserved"
	}
}

// DesignatorType is the 4-bit designator type of a designation descriptor
// (SPC-4 7.8.6.1).
type DesignatorType uint8

const (
	DesignatorVS DesignatorType = iota
	DesignatorT10VendorID
	DesignatorEUI64
	DesignatorNAA
	DesignatorRelativeTargetPort
	DesignatorTargetPortGroup
	DesignatorLogicalUnitGroup
	DesignatorMD5LogicalUnitID
	DesignatorScsiNameString
	DesignatorProtocolSpecificPort
	DesignatorReserved
)

func ParseDesignatorType(code uint8) DesignatorType {
	switch code {
	case 0:
		return DesignatorVS
	case 1:
		return DesignatorT10VendorID
	case 2:
		return DesignatorEUI64
	case 3:
		return DesignatorNAA
	case 4:
		return DesignatorRelativeTargetPort
	case 5:
		return DesignatorTargetPortGroup
	case 6:
		return DesignatorLogicalUnitGroup
	case 7:
		return DesignatorMD5LogicalUnitID
	case 8:
		return DesignatorScsiNameString
	case 9:
		return DesignatorProtocolSpecificPort
	default:
		return DesignatorReserved
	}
}

func (t DesignatorType) String() string {
	switch t {
	case DesignatorVS:
		return "vendor specific"
	case DesignatorT10VendorID:
		return "T10 vendor ID"
	case DesignatorEUI64:
		return "EUI-64"
	case DesignatorNAA:
		return "NAA"
	case DesignatorRelativeTargetPort:
		return "relative target port"
	case DesignatorTargetPortGroup:
		return "target port group"
	case DesignatorLogicalUnitGroup:
		return "logical unit group"
	case DesignatorMD5LogicalUnitID:
		return "MD5 logical unit identifier"
	case DesignatorScsiNameString:
		return "SCSI name string"
	case DesignatorProtocolSpecificPort:
		return "protocol specific port"
	default:
		return "reserved"
	}
}

// ProtocolIdentifier is the 4-bit protocol identifier of a designation
// descriptor (SPC-4 table 262).
type ProtocolIdentifier uint8

const (
	ProtocolFcp ProtocolIdentifier = iota
	ProtocolSpi
	ProtocolSsa
	ProtocolSbp
	ProtocolSrp
	ProtocolIscsi
	ProtocolSpl
	ProtocolAdt
	ProtocolAcs
	ProtocolUas
	ProtocolSop
	ProtocolReserved
	ProtocolUnspecified
)

// ParseProtocolIdentifier decodes a raw protocol identifier code. The field
// is only meaningful when the descriptor's PIV bit is set and the association
// is a target port or the SCSI target device; otherwise it decodes to
// Reserved regardless of the raw code.
func ParseProtocolIdentifier(code uint8, assoc Association, piv bool) ProtocolIdentifier {
	if !piv || (assoc != AssocTargetPort && assoc != AssocScsiTargetDevice) {
		return ProtocolReserved
	}

	switch code {
	case 0x0:
		return ProtocolFcp
	case 0x1:
		return ProtocolSpi
	case 0x2:
		return ProtocolSsa
	case 0x3:
		return ProtocolSbp
	case 0x4:
		return ProtocolSrp
	case 0x5:
		return ProtocolIscsi
	case 0x6:
		return ProtocolSpl
	case 0x7:
		return ProtocolAdt
	case 0x8:
		return ProtocolAcs
	case 0x9:
		return ProtocolUas
	case 0xa:
		return ProtocolSop
	case 0xb, 0xc, 0xd, 0xe:
		return ProtocolReserved
	default:
		return ProtocolUnspecified
	}
}

func (p ProtocolIdentifier) String() string {
	switch p {
	case ProtocolFcp:
		return "Fibre Channel (FCP)"
	case ProtocolSpi:
		return "parallel SCSI (SPI)"
	case ProtocolSsa:
		return "SSA"
	case ProtocolSbp:
		return "IEEE 1394 (SBP)"
	case ProtocolSrp:
		return "SCSI RDMA (SRP)"
	case ProtocolIscsi:
		return "iSCSI"
	case ProtocolSpl:
		return "SAS (SPL)"
	case ProtocolAdt:
		return "automation/drive interface (ADT)"
	case ProtocolAcs:
		return "ATA (ACS)"
	case ProtocolUas:
		return "USB attached SCSI (UAS)"
	case ProtocolSop:
		return "SCSI over PCIe (SOP)"
	case ProtocolUnspecified:
		return "unspecified"
	default:
		return "reserved"
	}
}

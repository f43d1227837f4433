// Copyright 2026 The go-scsi authors. All rights reserved.
// Use of this source code is governed by an MIT license that can be found in the LICENSE file.

// sginfo queries SCSI device identity via the INQUIRY command and its VPD
// pages.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/go-scsi/sg3"
	"github.com/go-scsi/sg3/scsi"
	"github.com/go-scsi/sg3/sgio"
	"github.com/go-scsi/sg3/utils"
	"github.com/go-scsi/sg3/vendordb"
)

func main() {
	device := flag.String("device", "", "Device to query, e.g., /dev/sg0 or /dev/sda")
	scan := flag.Bool("scan", false, "Scan for SCSI devices")
	dbfile := flag.String("vendordb", "vendordb.yaml", "Vendor database file")
	verbose := flag.Bool("verbose", false, "Enable SG_IO trace logging")
	flag.Parse()

	if *verbose {
		logrus.SetLevel(logrus.TraceLevel)
	}

	if *scan {
		for _, dev := range sg3.ScanDevices() {
			fmt.Println(dev)
		}
		return
	}

	if *device == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*device, *dbfile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(device, dbfile string) error {
	dev, err := sgio.Open(device)
	if err != nil {
		return err
	}

	defer dev.Close()

	inq, err := sg3.Inquiry(dev)
	if err != nil {
		return err
	}

	vendor, err := inq.Vendor()
	if err != nil {
		return err
	}

	product, err := inq.Product()
	if err != nil {
		return err
	}

	revision, err := inq.Revision()
	if err != nil {
		return err
	}

	fmt.Printf("Device          : %s (%s, %s)\n", device, inq.PeripheralDeviceType(), inq.PeripheralQualifier())
	fmt.Printf("Vendor          : %s\n", utils.TrimPadding(vendor))
	fmt.Printf("Product         : %s\n", utils.TrimPadding(product))
	fmt.Printf("Revision        : %s\n", utils.TrimPadding(revision))
	fmt.Printf("Version         : %#04x\n", inq.Version())
	fmt.Printf("Removable       : %v\n", inq.RMB())
	fmt.Printf("Command queuing : %v\n", inq.CmdQue())

	db, err := vendordb.OpenVendorDb(dbfile)
	if err != nil {
		return err
	}

	if e := db.Lookup(utils.TrimPadding(vendor), utils.TrimPadding(product)); e.Family != "" {
		fmt.Printf("Family          : %s\n", e.Family)
		if e.WarningMsg != "" {
			fmt.Printf("WARNING         : %s\n", e.WarningMsg)
		}
	}

	serialPage, err := sg3.InquiryVpd80(dev)
	if err != nil {
		return err
	}

	serial, err := serialPage.SerialNumber()
	if err != nil {
		return err
	}

	fmt.Printf("Serial number   : %s\n", utils.TrimPadding(serial))

	idPage, err := sg3.InquiryVpd83(dev)
	if err != nil {
		return err
	}

	fmt.Println("\nDevice identification designators:")

	for i, d := range idPage.Designators {
		fmt.Printf("  [%d] %s, %s, protocol: %s\n", i, d.Type, d.Association, d.Protocol)

		switch v := d.Value.(type) {
		case scsi.TextDesignator:
			fmt.Printf("      %s\n", string(v))
		case scsi.BinaryDesignator:
			fmt.Printf("      %s\n", utils.HexFormat(v))
		}
	}

	return nil
}

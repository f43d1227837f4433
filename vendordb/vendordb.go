// Copyright 2026 The go-scsi authors. All rights reserved.
// Use of this source code is governed by an MIT license that can be found in the LICENSE file.

// Package vendordb maps the T10 vendor and product identification strings
// reported by a standard INQUIRY to known device families.
package vendordb

import (
	"os"
	"regexp"

	"gopkg.in/yaml.v2"
)

// Entry describes one known vendor/product combination.
type Entry struct {
	Family         string
	Vendor         string
	ProductRegex   string
	WarningMsg     string
	CompiledRegexp *regexp.Regexp
}

type VendorDb struct {
	Entries []Entry
}

// Lookup returns the most appropriate Entry for a device's vendor and product
// identification strings (padding already trimmed). A DEFAULT entry, if
// present, is returned when nothing more specific matches.
func (db *VendorDb) Lookup(vendor, product string) Entry {
	var match Entry

	for _, e := range db.Entries {
		if e.Family == "DEFAULT" {
			match = e
			continue
		}

		if e.Vendor != vendor {
			continue
		}

		if e.CompiledRegexp == nil || e.CompiledRegexp.MatchString(product) {
			return e
		}
	}

	return match
}

// OpenVendorDb opens a YAML-formatted vendor database, unmarshalls it, and
// returns a VendorDb. A missing file is not an error; lookups against the
// empty database return the zero Entry.
func OpenVendorDb(dbfile string) (VendorDb, error) {
	var db VendorDb

	f, err := os.Open(dbfile)
	if err != nil {
		return db, nil
	}

	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&db); err != nil {
		return db, err
	}

	for i, e := range db.Entries {
		db.Entries[i].CompiledRegexp, _ = regexp.Compile(e.ProductRegex)
	}

	return db, nil
}

// Copyright 2026 The go-scsi authors. All rights reserved.
// Use of this source code is governed by an MIT license that can be found in the LICENSE file.

package vendordb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDb = `entries:
  - family: DEFAULT
    warningmsg: unrecognized device
  - family: Samsung SSD 860 series
    vendor: ATA
    productregex: Samsung SSD 86[05]
  - family: LIO iSCSI target
    vendor: LIO-ORG
`

func writeTestDb(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "vendordb.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testDb), 0644))

	return path
}

func TestLookup(t *testing.T) {
	assert := assert.New(t)

	db, err := OpenVendorDb(writeTestDb(t))
	require.NoError(t, err)
	require.Len(t, db.Entries, 3)

	e := db.Lookup("ATA", "Samsung SSD 860")
	assert.Equal("Samsung SSD 860 series", e.Family)

	// No product regex means any product of that vendor matches
	e = db.Lookup("LIO-ORG", "FILEIO")
	assert.Equal("LIO iSCSI target", e.Family)

	// Vendor mismatch falls back to the DEFAULT entry
	e = db.Lookup("SEAGATE", "ST4000NM0023")
	assert.Equal("DEFAULT", e.Family)
	assert.Equal("unrecognized device", e.WarningMsg)
}

func TestOpenVendorDbMissingFile(t *testing.T) {
	db, err := OpenVendorDb(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)
	assert.Empty(t, db.Entries)

	// Lookups against the empty database return the zero Entry
	assert.Equal(t, Entry{}, db.Lookup("ATA", "anything"))
}

func TestOpenVendorDbInvalidYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vendordb.yaml")
	require.NoError(t, os.WriteFile(path, []byte("entries: {not a list"), 0644))

	_, err := OpenVendorDb(path)
	assert.Error(t, err)
}

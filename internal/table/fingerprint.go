package table

import (
	"encoding/hex"
	"strconv"

	"github.com/Alia5/webkeys/scancode"
	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns the BLAKE2b-256 digest of the scancode table, hex
// encoded. The digest only changes when a key is renumbered, added or removed.
//
// The hashed form is one "<scancode>:<key>\n" line per entry in scancode order.
func Fingerprint() string {
	var buf []byte
	for _, e := range scancode.Entries() {
		buf = strconv.AppendUint(buf, uint64(e.Scancode), 10)
		buf = append(buf, ':')
		buf = append(buf, e.Key.String()...)
		buf = append(buf, '\n')
	}
	sum := blake2b.Sum256(buf)
	return hex.EncodeToString(sum[:])
}

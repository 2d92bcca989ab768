// Package integrity verifies content checksums for image payloads that
// travel as base64 text between client and server.
package integrity

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
)

// ChecksumMismatchError carries both hashes so the caller can report
// exactly what was expected and what arrived.
type ChecksumMismatchError struct {
	Expected   string
	Calculated string
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch: expected %s, calculated %s", e.Expected, e.Calculated)
}

// Checksum returns the lowercase hex MD5 digest of data. MD5 is what
// the storefront clients compute; it guards against corruption in
// transit, not against an adversary with a chosen-prefix attack.
func Checksum(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}

// Verify recomputes the checksum over data and compares it to the
// client-supplied value with exact string equality.
func Verify(data []byte, expected string) error {
	calculated := Checksum(data)
	if calculated != expected {
		return &ChecksumMismatchError{Expected: expected, Calculated: calculated}
	}
	return nil
}

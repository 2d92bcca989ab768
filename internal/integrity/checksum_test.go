package integrity

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksumKnownValue(t *testing.T) {
	// md5("hello") is a fixed reference value
	assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", Checksum([]byte("hello")))
}

func TestChecksumBase64RoundTrip(t *testing.T) {
	payloads := [][]byte{
		[]byte(""),
		[]byte("a"),
		[]byte("some image bytes \x00\x01\x02\xff"),
		make([]byte, 1<<16),
	}

	for _, data := range payloads {
		before := Checksum(data)

		encoded := base64.StdEncoding.EncodeToString(data)
		decoded, err := base64.StdEncoding.DecodeString(encoded)
		require.NoError(t, err)

		assert.Equal(t, before, Checksum(decoded), "hash must survive the base64 round trip")
	}
}

func TestVerifyMatch(t *testing.T) {
	data := []byte("payload under test")
	assert.NoError(t, Verify(data, Checksum(data)))
}

func TestVerifyMismatch(t *testing.T) {
	data := []byte("payload under test")
	err := Verify(data, "00000000000000000000000000000000")
	require.Error(t, err)

	var mismatch *ChecksumMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "00000000000000000000000000000000", mismatch.Expected)
	assert.Equal(t, Checksum(data), mismatch.Calculated)
	assert.Contains(t, err.Error(), mismatch.Expected)
	assert.Contains(t, err.Error(), mismatch.Calculated)
}

func TestVerifyIsCaseSensitive(t *testing.T) {
	data := []byte("abc")
	upper := "900150983CD24FB0D6963F7D28E17F72" // uppercase form of the md5
	assert.Error(t, Verify(data, upper), "comparison is exact string equality")
}

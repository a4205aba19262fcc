// Package address encodes ledger verification keys as checksummed payment
// addresses of the form "pay:sov:<base58 key><checksum>".
package address

import (
	"crypto/subtle"
	"strings"
	"unicode/utf8"

	"sovtoken-payments/pkg/apperror"

	"github.com/btcsuite/btcd/btcutil/base58"
	"golang.org/x/crypto/blake2b"
)

const (
	// Prefix is the method-qualified scheme every payment address starts with.
	Prefix = "pay:sov:"
	// KeyLength is the size of a raw verification key in bytes.
	KeyLength = 32
	// ChecksumLength is the number of checksum characters appended to the key.
	ChecksumLength = 4
	// ChecksumVersion is mixed into the checksum digest so the algorithm can
	// be rotated without ambiguity.
	ChecksumVersion byte = 1
)

var (
	// A 32-byte key base58-encodes to at most 44 characters; all-zero keys
	// shrink to one '1' per byte.
	minEncodedKey = KeyLength
	maxEncodedKey = 44

	MinLength = len(Prefix) + minEncodedKey + ChecksumLength
	MaxLength = len(Prefix) + maxEncodedKey + ChecksumLength
)

// VerKey is a raw verification key.
type VerKey [KeyLength]byte

// VerKeyFromBytes copies b into a VerKey.
func VerKeyFromBytes(b []byte) (VerKey, error) {
	var k VerKey
	if len(b) != KeyLength {
		return k, apperror.InvalidAddress("key must be 32 bytes")
	}
	copy(k[:], b)
	return k, nil
}

// VerKeyFromBase58 decodes the base58 form wallets use to exchange keys.
func VerKeyFromBase58(s string) (VerKey, error) {
	return VerKeyFromBytes(base58.Decode(s))
}

// Base58 returns the key in base58.
func (k VerKey) Base58() string {
	return base58.Encode(k[:])
}

// Address is a decoded, checksum-verified payment address.
type Address struct {
	key VerKey
	s   string
}

// New builds the address for key.
func New(key VerKey) Address {
	return Address{key: key, s: Create(key)}
}

// Parse decodes s into an Address.
func Parse(s string) (Address, error) {
	key, err := Decode(s)
	if err != nil {
		return Address{}, err
	}
	return Address{key: key, s: s}, nil
}

func (a Address) String() string { return a.s }
func (a Address) VerKey() VerKey { return a.key }

// Create returns the payment address for key. It is deterministic.
func Create(key VerKey) string {
	var sb strings.Builder
	sb.Grow(MaxLength)
	sb.WriteString(Prefix)
	sb.WriteString(base58.Encode(key[:]))
	sb.WriteString(checksum(key))
	return sb.String()
}

// Decode verifies s and returns the embedded key. Every failure is an
// InvalidAddress error and no partial result is returned.
func Decode(s string) (VerKey, error) {
	var zero VerKey

	if !ValidateAddressLength(s) {
		return zero, apperror.InvalidAddress("length out of range")
	}
	if !strings.HasPrefix(s, Prefix) {
		return zero, apperror.InvalidAddress("missing " + Prefix + " prefix")
	}

	body := s[len(Prefix):]
	encKey, sum := body[:len(body)-ChecksumLength], body[len(body)-ChecksumLength:]

	raw := base58.Decode(encKey)
	if len(raw) != KeyLength {
		return zero, apperror.InvalidAddress("key does not decode to 32 bytes")
	}
	// Only the canonical text of a key is accepted.
	if base58.Encode(raw) != encKey {
		return zero, apperror.InvalidAddress("key is not canonical base58")
	}

	var key VerKey
	copy(key[:], raw)
	if subtle.ConstantTimeCompare([]byte(checksum(key)), []byte(sum)) != 1 {
		return zero, apperror.InvalidAddress("checksum mismatch")
	}
	return key, nil
}

// Validate reports whether s is a well-formed payment address.
func Validate(s string) error {
	_, err := Decode(s)
	return err
}

// ValidateLength is the cheap length guard run before a full decode.
func ValidateLength(s string, expected int) bool {
	return utf8.RuneCountInString(s) == expected
}

// ValidateAddressLength reports whether s can possibly be a payment address.
func ValidateAddressLength(s string) bool {
	return len(s) >= MinLength && len(s) <= MaxLength
}

// ValidateDIDLength bounds a submitter DID to [min, max] characters.
func ValidateDIDLength(did string, lo, hi int) bool {
	n := utf8.RuneCountInString(did)
	return n > 0 && n >= lo && n <= hi
}

func checksum(key VerKey) string {
	buf := make([]byte, 0, KeyLength+1)
	buf = append(buf, ChecksumVersion)
	buf = append(buf, key[:]...)
	digest := blake2b.Sum256(buf)
	return base58.Encode(digest[:])[:ChecksumLength]
}

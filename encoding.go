package scalar25519

import (
	"encoding/hex"

	"github.com/cockroachdb/errors"
)

// Bits returns the little-endian bits of s, one per element.
func (s Scalar) Bits() [256]uint8 {
	var bits [256]uint8
	for i := range bits {
		bits[i] = (s.b[i>>3] >> (i & 7)) & 1
	}
	return bits
}

// MarshalBinary returns the canonical 32-byte encoding of s.
func (s Scalar) MarshalBinary() ([]byte, error) {
	return s.b[:], nil
}

// UnmarshalBinary sets s to the scalar encoded by b, which must be canonical.
// On error s is left unchanged.
func (s *Scalar) UnmarshalBinary(b []byte) error {
	v, err := ParseCanonical(b)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalText returns the hex encoding of s.
func (s Scalar) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText is like [Scalar.UnmarshalBinary] for a hex encoding.
func (s *Scalar) UnmarshalText(text []byte) error {
	b, err := hex.DecodeString(string(text))
	if err != nil {
		return errors.Wrap(err, "scalar25519: decoding hex")
	}
	return s.UnmarshalBinary(b)
}

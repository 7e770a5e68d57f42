package scalar25519

import (
	"crypto/sha512"
	"hash"

	"github.com/cockroachdb/errors"
)

// FromHash finalizes h and returns its 64-byte digest reduced modulo l with
// [FromBytesModOrderWide]. The hash state is not reset.
//
// It returns [ErrInvalidLength] if h does not produce 64-byte digests.
func FromHash(h hash.Hash) (Scalar, error) {
	if h.Size() != 64 {
		return Scalar{}, errors.Wrapf(ErrInvalidLength, "hash digest is %d bytes, want 64", h.Size())
	}
	var digest [64]byte
	h.Sum(digest[:0])
	return FromBytesModOrderWide(digest), nil
}

// HashFromBytes returns the SHA-512 digest of msg reduced modulo l, as used by
// Ed25519 signatures.
func HashFromBytes(msg []byte) Scalar {
	return FromBytesModOrderWide(sha512.Sum512(msg))
}

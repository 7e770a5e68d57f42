package edwards

import (
	"crypto/ecdh"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"

	"filippo.io/edwards25519"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (m *montgomeryPoint) String() string {
	return fmt.Sprintf("{u: %x, v: %x}", m.u.Bytes(), m.v.Bytes())
}

func TestEdwardsFromMontgomery(t *testing.T) {
	// The Edwards generator corresponds to the Montgomery base point u = 9.
	var m montgomeryPoint
	_, err := m.setBytes(fieldElementFromUint64(9).Bytes())
	require.NoError(t, err)
	t.Log(&m)

	p, err := edwardsFromMontgomery(&m)
	require.NoError(t, err)

	g := edwards25519.NewGeneratorPoint()
	neg := new(edwards25519.Point).Negate(g)
	assert.True(t, p.Equal(g) == 1 || p.Equal(neg) == 1)
	assert.Equal(t, g.BytesMontgomery(), p.BytesMontgomery())
}

func TestX25519(t *testing.T) {
	for range 16 {
		priv, err := ecdh.X25519().GenerateKey(rand.Reader)
		require.NoError(t, err)
		peer, err := ecdh.X25519().GenerateKey(rand.Reader)
		require.NoError(t, err)

		want, err := priv.ECDH(peer.PublicKey())
		require.NoError(t, err)

		got, err := X25519([32]byte(priv.Bytes()), peer.PublicKey().Bytes())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestX25519BasePoint(t *testing.T) {
	priv, err := ecdh.X25519().GenerateKey(rand.Reader)
	require.NoError(t, err)

	basePoint := fieldElementFromUint64(9).Bytes()
	got, err := X25519([32]byte(priv.Bytes()), basePoint)
	require.NoError(t, err)
	assert.Equal(t, priv.PublicKey().Bytes(), got)
}

func TestX25519Vector(t *testing.T) {
	// RFC 7748, Section 5.2.
	scalar := decodeHex("a546e36bf0527c9d3b16154b82465edd62144c0ac1fc5a18506a2244ba449ac4")
	u := decodeHex("e6db6867583030db3594c1a424b15f7c726624ec26b3353b10a903a6d0ab1c4c")
	want := decodeHex("c3da55379de9c6908e94ea4df28d084f32eccf03491c71f754b4075577a28552")

	got, err := X25519([32]byte(scalar), u)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestX25519Rejects(t *testing.T) {
	var k [32]byte
	k[0] = 1

	// u = 0 is the point of order two.
	_, err := X25519(k, make([]byte, 32))
	assert.True(t, errors.Is(err, errLowOrder), "got %v", err)

	// u = 2 is on the twist.
	_, err = X25519(k, fieldElementFromUint64(2).Bytes())
	assert.True(t, errors.Is(err, errNotOnCurve), "got %v", err)

	_, err = X25519(k, make([]byte, 31))
	assert.Error(t, err)
}

func decodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

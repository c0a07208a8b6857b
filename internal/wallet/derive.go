package wallet

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// DerivationPath is the standard Solana account path.
const DerivationPath = "m/44'/501'/0'/0'"

const hardenedOffset = 0x80000000

// slip10Key is the SLIP-0010 master-key HMAC key for the ed25519 curve.
var slip10Key = []byte("ed25519 seed")

// parsePath splits a path like m/44'/501'/0'/0' into hardened child indices.
// ed25519 supports hardened derivation only, so every segment must carry the
// ' marker.
func parsePath(path string) ([]uint32, error) {
	if !strings.HasPrefix(path, "m/") {
		return nil, fmt.Errorf("path must start with m/: %q", path)
	}
	segments := strings.Split(path[2:], "/")
	indices := make([]uint32, 0, len(segments))
	for _, seg := range segments {
		if !strings.HasSuffix(seg, "'") {
			return nil, fmt.Errorf("non-hardened segment %q", seg)
		}
		n, err := strconv.ParseUint(strings.TrimSuffix(seg, "'"), 10, 32)
		if err != nil || n >= hardenedOffset {
			return nil, fmt.Errorf("invalid segment %q", seg)
		}
		indices = append(indices, uint32(n)|hardenedOffset)
	}
	return indices, nil
}

// deriveScalar walks the SLIP-0010 ed25519 chain from the seed through the
// given indices and returns the 32-byte private scalar at the leaf.
func deriveScalar(seed []byte, indices []uint32) []byte {
	mac := hmac.New(sha512.New, slip10Key)
	mac.Write(seed)
	sum := mac.Sum(nil)
	key, chain := sum[:32], sum[32:]

	for _, index := range indices {
		data := make([]byte, 0, 37)
		data = append(data, 0x00)
		data = append(data, key...)
		data = binary.BigEndian.AppendUint32(data, index)

		mac = hmac.New(sha512.New, chain)
		mac.Write(data)
		sum = mac.Sum(nil)
		key, chain = sum[:32], sum[32:]
	}
	return key
}

package managers

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/tmcasey/channelflow/pkg/hydraulics"
)

// Fingerprint returns a deterministic hex digest of a parameter set, used as
// the cache key for stored calculations. msgpack encodes struct fields in
// declaration order, so identical parameter values always produce identical
// digests.
func Fingerprint(p hydraulics.ChannelParams) (string, error) {
	encoded, err := msgpack.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encoding parameters for fingerprint: %w", err)
	}
	sum := sha256.Sum256(encoded)
	return hex.EncodeToString(sum[:]), nil
}

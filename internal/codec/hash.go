package codec

import (
	"crypto/md5"
	"crypto/sha256"
	"fmt"
	"math/big"
)

// Supported OOV bucket digest algorithm identifiers. The algorithm is part
// of the codec configuration: changing it reassigns every OOV bucket, so the
// identifier must stay pinned wherever bucket assignments are persisted or
// compared across implementations. MD5 is the default for compatibility
// with existing bucket assignments and is not used for anything
// security-related here.
const (
	HashMD5    = "md5"
	HashSHA256 = "sha256"
)

// bucketHash maps token to a bucket in [0, buckets) using the named digest
// algorithm. The digest bytes are interpreted as a single big-endian
// unsigned integer before the modulo, which keeps assignments identical
// across processes, platforms, and independent implementations.
func bucketHash(algorithm, token string, buckets int) (int, error) {
	var digest []byte

	switch algorithm {
	case HashMD5:
		sum := md5.Sum([]byte(token))
		digest = sum[:]
	case HashSHA256:
		sum := sha256.Sum256([]byte(token))
		digest = sum[:]
	default:
		return 0, fmt.Errorf("unsupported hash algorithm %q (want %s|%s)", algorithm, HashMD5, HashSHA256)
	}

	n := new(big.Int).SetBytes(digest)
	return int(n.Mod(n, big.NewInt(int64(buckets))).Int64()), nil
}

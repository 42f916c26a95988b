package slug

import (
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Sum224 returns the SHA3-224 digest of data.
func Sum224(data []byte) Bytes28 {
	return sha3.Sum224(data)
}

// Sum256 returns the SHA3-256 digest of data.
func Sum256(data []byte) Bytes32 {
	return sha3.Sum256(data)
}

// Sum384 returns the SHA3-384 digest of data.
func Sum384(data []byte) Bytes48 {
	return sha3.Sum384(data)
}

// Sum512 returns the SHA3-512 digest of data.
func Sum512(data []byte) Bytes64 {
	return sha3.Sum512(data)
}

// Blake2b256 returns the BLAKE2b-256 digest of data.
func Blake2b256(data []byte) Bytes32 {
	return blake2b.Sum256(data)
}

// Blake2b512 returns the BLAKE2b-512 digest of data.
func Blake2b512(data []byte) Bytes64 {
	return blake2b.Sum512(data)
}

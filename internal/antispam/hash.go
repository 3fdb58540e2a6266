package antispam

import (
	"crypto/md5"
	"crypto/sha1"
	"encoding/hex"
)

// Hash fingerprints an origin value as md5(sha1(s)), both hex encoded.
func Hash(s string) string {
	sh := sha1.Sum([]byte(s))
	md := md5.Sum([]byte(hex.EncodeToString(sh[:])))
	return hex.EncodeToString(md[:])
}

package utils

import (
	"crypto/rand"
	"math/big"

	"github.com/speps/go-hashids/v2"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// RandomBase36 returns n random characters from [0-9a-z].
func RandomBase36(n int) string {
	buf := make([]byte, n)
	max := big.NewInt(int64(len(base36)))
	for i := range buf {
		v, err := rand.Int(rand.Reader, max)
		if err != nil {
			buf[i] = base36[i%len(base36)]
			continue
		}
		buf[i] = base36[v.Int64()]
	}
	return string(buf)
}

// GenHashID encodes id as an opaque, salted, upper-case code.
func GenHashID(salt string, id int64) string {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 8
	hd.Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	h, err := hashids.NewWithData(hd)
	if err != nil {
		return ""
	}
	e, _ := h.EncodeInt64([]int64{id})
	return e
}

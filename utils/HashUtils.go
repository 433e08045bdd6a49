package utils

import (
	"encoding/hex"
	"strconv"

	"github.com/zeebo/xxh3"
)

func GetEncodedXXHash128(data ...[]byte) string {
	h := xxh3.New()
	for _, bytes := range data {
		h.Write(bytes)
	}
	sum := h.Sum128().Bytes()
	return hex.EncodeToString(sum[:])
}

// GetETag returns a strong entity tag for the response body.
func GetETag(body []byte) string {
	return strconv.Quote(strconv.FormatUint(xxh3.Hash(body), 16))
}

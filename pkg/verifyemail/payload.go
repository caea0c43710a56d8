package verifyemail

import (
	"encoding/binary"
	"slices"
	"strconv"
)

// payloadVersion is the first field of every payload; bump it when the layout changes.
const payloadVersion = "verifyemail/v1"

// canonicalPayload encodes the signing inputs so that distinct inputs never
// collide: every string is prefixed with its length and the parameter list
// with its count, parameters sorted by key.
func canonicalPayload(route, userID, email string, expires int64, params map[string]string) []byte {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	size := len(payloadVersion) + len(route) + len(userID) + len(email) + 20 + 6*binary.MaxVarintLen64
	for _, k := range keys {
		size += len(k) + len(params[k]) + 2*binary.MaxVarintLen64
	}

	b := make([]byte, 0, size)
	b = appendField(b, payloadVersion)
	b = appendField(b, route)
	b = appendField(b, userID)
	b = appendField(b, email)
	b = appendField(b, strconv.FormatInt(expires, 10))
	b = binary.AppendUvarint(b, uint64(len(keys)))
	for _, k := range keys {
		b = appendField(b, k)
		b = appendField(b, params[k])
	}
	return b
}

func appendField(b []byte, s string) []byte {
	b = binary.AppendUvarint(b, uint64(len(s)))
	return append(b, s...)
}

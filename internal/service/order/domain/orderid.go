package domain

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const (
	orderIDPrefix  = "ORD"
	randSuffixLen  = 6
	base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// GenerateOrderID produces a human-readable order identifier of the form
// ORD-<base36 millisecond timestamp>-<6 random base36 chars>. The timestamp
// component keeps ids roughly sortable by creation time; uniqueness is
// enforced by the repository's unique index, not by this function.
func GenerateOrderID() string {
	var b strings.Builder
	b.WriteString(orderIDPrefix)
	b.WriteByte('-')
	b.WriteString(strconv.FormatInt(time.Now().UnixMilli(), 36))
	b.WriteByte('-')
	for i := 0; i < randSuffixLen; i++ {
		b.WriteByte(base36Alphabet[rand.Intn(len(base36Alphabet))])
	}
	return b.String()
}

// Package uuid generates time-ordered identifiers for audit records.
package uuid

import (
	"crypto/rand"
	"encoding/binary"
	"time"

	googleuuid "github.com/google/uuid"
)

// New returns a UUIDv7 string: a 48-bit millisecond timestamp followed by
// random bits, with version 7 and the RFC 4122 variant set.
func New() string {
	var id googleuuid.UUID

	binary.BigEndian.PutUint64(id[0:8], uint64(time.Now().UnixMilli())<<16)

	if _, err := rand.Read(id[6:]); err != nil {
		return googleuuid.New().String()
	}

	id[6] = (id[6] & 0x0f) | 0x70
	id[8] = (id[8] & 0x3f) | 0x80

	return id.String()
}

package uuid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"time"

	googleuuid "github.com/google/uuid"
)

// New generates a new UUIDv7 based on the current timestamp.
// UUIDv7 is time-ordered, which keeps database primary key indexes
// append-mostly.
//
// Layout (RFC 4122):
//   - 48 bits Unix timestamp in milliseconds
//   - 4 bits version (0111)
//   - 12 bits random
//   - 2 bits variant (10)
//   - 62 bits random
func New() string {
	var id [16]byte

	millis := uint64(time.Now().UnixMilli())
	binary.BigEndian.PutUint64(id[0:8], millis<<16)

	if _, err := rand.Read(id[6:]); err != nil {
		// No randomness available; fall back to a library UUIDv4.
		return googleuuid.New().String()
	}

	id[6] = (id[6] & 0x0f) | 0x70
	id[8] = (id[8] & 0x3f) | 0x80

	return fmt.Sprintf("%08x-%04x-%04x-%04x-%012x",
		binary.BigEndian.Uint32(id[0:4]),
		binary.BigEndian.Uint16(id[4:6]),
		binary.BigEndian.Uint16(id[6:8]),
		binary.BigEndian.Uint16(id[8:10]),
		id[10:16],
	)
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}

package adnl

import (
	"encoding/base32"
	"errors"
	"strings"
)

// ShortID is a 256-bit ADNL node identifier.
type ShortID [32]byte

// Serialized ids are base32 over a one-byte tag plus the 32-byte id, with
// the leading character dropped (it always encodes the tag's top bits).
const (
	idTag            = 0x2d
	serializedLength = 52
)

var encoding = base32.NewEncoding("abcdefghijklmnopqrstuvwxyz234567").WithPadding(base32.NoPadding)

var (
	ErrBadLength = errors.New("adnl: wrong serialized id length")
	ErrBadTag    = errors.New("adnl: wrong id tag byte")
)

// Serialize returns the canonical lowercase textual form of the id.
func (id ShortID) Serialize() string {
	buf := make([]byte, 0, 33)
	buf = append(buf, idTag)
	buf = append(buf, id[:]...)
	return encoding.EncodeToString(buf)[1:]
}

// Parse decodes a serialized id back into its binary form. It accepts only
// the exact output of Serialize (lowercase, no padding, tag intact).
func Parse(s string) (ShortID, error) {
	var id ShortID
	if len(s) != serializedLength {
		return id, ErrBadLength
	}
	// Re-prepend the character dropped by Serialize; it encodes the top
	// five bits of the tag byte.
	decoded, err := encoding.DecodeString("f" + strings.ToLower(s))
	if err != nil {
		return id, err
	}
	if decoded[0] != idTag {
		return id, ErrBadTag
	}
	copy(id[:], decoded[1:])
	return id, nil
}

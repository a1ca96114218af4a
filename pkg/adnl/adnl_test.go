package adnl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSerializeParseRoundTrip(t *testing.T) {
	var id ShortID
	for i := range id {
		id[i] = byte(i * 7)
	}

	s := id.Serialize()
	require.Len(t, s, serializedLength)
	require.Equal(t, strings.ToLower(s), s)

	parsed, err := Parse(s)
	require.NoError(t, err)
	require.Equal(t, id, parsed)
}

func TestParseAcceptsUppercase(t *testing.T) {
	var id ShortID
	id[0] = 0xFF

	parsed, err := Parse(strings.ToUpper(id.Serialize()))
	require.NoError(t, err)
	require.Equal(t, id, parsed)
}

func TestParseRejectsWrongLength(t *testing.T) {
	var id ShortID
	_, err := Parse(id.Serialize()[:serializedLength-1])
	require.ErrorIs(t, err, ErrBadLength)

	_, err = Parse("")
	require.ErrorIs(t, err, ErrBadLength)
}

func TestParseRejectsBadAlphabet(t *testing.T) {
	var id ShortID
	s := []byte(id.Serialize())
	s[10] = '1' // not in the base32 alphabet
	_, err := Parse(string(s))
	require.Error(t, err)
}

func TestParseRejectsWrongTag(t *testing.T) {
	// Build a serialized string whose tag byte shares the dropped top bits
	// with the real tag but differs below them.
	buf := make([]byte, 33)
	buf[0] = 0x2c
	s := encoding.EncodeToString(buf)[1:]

	_, err := Parse(s)
	require.ErrorIs(t, err, ErrBadTag)
}

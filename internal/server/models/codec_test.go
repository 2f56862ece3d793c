package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVaccineInfo_WireBytes(t *testing.T) {
	info := VaccineInfo{RNAInfo: "abc", Name: "x", SellerID: "u"}

	b, err := info.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x0a, 0x03, 'a', 'b', 'c', 0x12, 0x01, 'x', 0x1a, 0x01, 'u'}, b)

	var got VaccineInfo
	require.NoError(t, got.UnmarshalBinary(b))
	assert.Equal(t, info, got)
}

func TestVaccineInfo_EmptyFieldsOmitted(t *testing.T) {
	b, err := VaccineInfo{Name: "x"}.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x12, 0x01, 'x'}, b)
}

func TestVaccineInfo_SkipsUnknownFields(t *testing.T) {
	// field 5 varint 1, then name "x", then field 9 fixed64
	b := []byte{0x28, 0x01, 0x12, 0x01, 'x', 0x49, 1, 2, 3, 4, 5, 6, 7, 8}

	var got VaccineInfo
	require.NoError(t, got.UnmarshalBinary(b))
	assert.Equal(t, VaccineInfo{Name: "x"}, got)
}

func TestVaccineInfo_Truncated(t *testing.T) {
	got := VaccineInfo{Name: "keep"}
	err := got.UnmarshalBinary([]byte{0x0a, 0x05, 'a'})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode vaccine info")
	assert.Equal(t, "keep", got.Name)
}

func TestFeedEntry_WireBytes(t *testing.T) {
	e := FeedEntry{Name: "cure", StockID: "s1"}

	b, err := e.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x0a, 0x04, 'c', 'u', 'r', 'e', 0x12, 0x02, 's', '1'}, b)

	var got FeedEntry
	require.NoError(t, got.UnmarshalBinary(b))
	assert.Equal(t, e, got)
}

func TestFeedEntry_Garbage(t *testing.T) {
	var got FeedEntry
	err := got.UnmarshalBinary([]byte{0xff, 0xff, 0xff})
	require.Error(t, err)
}

package models

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Stored records use the protobuf wire format so existing data written by
// protobuf-generated code stays readable. Field numbers:
//
//	VaccineInfo: rna_info=1 name=2 seller_id=3
//	FeedEntry:   name=1 stock_id=2
const (
	fieldInfoRNA    protowire.Number = 1
	fieldInfoName   protowire.Number = 2
	fieldInfoSeller protowire.Number = 3

	fieldFeedName  protowire.Number = 1
	fieldFeedStock protowire.Number = 2
)

func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

// decodeStrings walks b and hands every length-delimited field to set.
// Fields of other wire types are skipped.
func decodeStrings(b []byte, set func(num protowire.Number, v string)) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		if typ == protowire.BytesType {
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			set(num, v)
			b = b[n:]
			continue
		}

		n = protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
	}
	return nil
}

func (v VaccineInfo) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendString(b, fieldInfoRNA, v.RNAInfo)
	b = appendString(b, fieldInfoName, v.Name)
	b = appendString(b, fieldInfoSeller, v.SellerID)
	return b, nil
}

func (v *VaccineInfo) UnmarshalBinary(data []byte) error {
	var out VaccineInfo
	err := decodeStrings(data, func(num protowire.Number, s string) {
		switch num {
		case fieldInfoRNA:
			out.RNAInfo = s
		case fieldInfoName:
			out.Name = s
		case fieldInfoSeller:
			out.SellerID = s
		}
	})
	if err != nil {
		return fmt.Errorf("decode vaccine info: %w", err)
	}
	*v = out
	return nil
}

func (e FeedEntry) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendString(b, fieldFeedName, e.Name)
	b = appendString(b, fieldFeedStock, e.StockID)
	return b, nil
}

func (e *FeedEntry) UnmarshalBinary(data []byte) error {
	var out FeedEntry
	err := decodeStrings(data, func(num protowire.Number, s string) {
		switch num {
		case fieldFeedName:
			out.Name = s
		case fieldFeedStock:
			out.StockID = s
		}
	})
	if err != nil {
		return fmt.Errorf("decode feed entry: %w", err)
	}
	*e = out
	return nil
}

package proto

import (
	"fmt"
)

// CodecName is the gRPC content-subtype of Codec.
const CodecName = "proto"

// Codec carries exchange messages in the protobuf binary format, so stock
// protobuf clients of the exchange.VaccineExchange service interoperate.
// Servers install it with grpc.ForceServerCodec and clients with
// grpc.ForceCodec.
type Codec struct{}

func (Codec) Marshal(v any) ([]byte, error) {
	m, ok := v.(Message)
	if !ok {
		return nil, fmt.Errorf("marshal: %T is not an exchange message", v)
	}
	b, err := m.MarshalProto()
	if err != nil {
		return nil, fmt.Errorf("marshal %T: %w", v, err)
	}
	return b, nil
}

func (Codec) Unmarshal(data []byte, v any) error {
	m, ok := v.(Message)
	if !ok {
		return fmt.Errorf("unmarshal: %T is not an exchange message", v)
	}
	if err := m.UnmarshalProto(data); err != nil {
		return fmt.Errorf("unmarshal %T: %w", v, err)
	}
	return nil
}

func (Codec) Name() string { return CodecName }

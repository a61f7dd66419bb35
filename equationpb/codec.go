package equationpb

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
)

// codecName identifies the JSON codec below with the gRPC encoding
// registry and as the content-subtype negotiated on every call.
const codecName = "equation-json"

// jsonCodec marshals the plain structs in this package (no protobuf
// descriptors involved) using encoding/json. It is registered globally
// and selected explicitly, via ForceServerCodec/ForceCodec, by every
// client and server constructed in this repository, so the fleet never
// falls back to gRPC's default protobuf codec.
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("equationpb: marshal: %w", err)
	}
	return b, nil
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("equationpb: unmarshal: %w", err)
	}
	return nil
}

func (jsonCodec) Name() string { return codecName }

// Codec is the shared jsonCodec instance; the servers and clients built
// elsewhere in this repository (operator.Run, peer.Manager, the tests)
// pass it to ForceServerCodec/ForceCodec so the negotiated
// content-subtype always matches codecName.
var Codec encoding.Codec = jsonCodec{}

func init() {
	encoding.RegisterCodec(Codec)
}

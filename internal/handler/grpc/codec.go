package grpc

import "encoding/json"

// CodecName is the content-subtype clients may request for the JSON codec.
const CodecName = "json"

// Codec carries gRPC messages as JSON. The face service has no protobuf
// definitions; request and response types are the plain models structs.
type Codec struct{}

func (Codec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (Codec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (Codec) Name() string {
	return CodecName
}

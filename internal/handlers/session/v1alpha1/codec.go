package v1alpha1

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// CodecName is the content subtype the session service is served under,
// i.e. "application/grpc+json"
const CodecName = "json"

func init() {
	encoding.RegisterCodec(Codec{})
}

// Codec encodes session messages as JSON. Protobuf messages, such as the
// well-known types, go through protojson so they keep their canonical JSON
// form.
type Codec struct{}

var _ encoding.Codec = Codec{}

// Marshal encodes v
func (Codec) Marshal(v any) ([]byte, error) {
	if m, ok := v.(proto.Message); ok {
		return protojson.Marshal(m)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("json codec: marshal %T: %w", v, err)
	}
	return data, nil
}

// Unmarshal decodes data into v
func (Codec) Unmarshal(data []byte, v any) error {
	if m, ok := v.(proto.Message); ok {
		return protojson.UnmarshalOptions{DiscardUnknown: true}.Unmarshal(data, m)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("json codec: unmarshal %T: %w", v, err)
	}
	return nil
}

// Name returns the content subtype
func (Codec) Name() string {
	return CodecName
}

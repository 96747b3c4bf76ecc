package report

import "encoding/json"

// JSONCodec encodes/decodes event records as JSON.
type JSONCodec struct{}

func (c *JSONCodec) Encode(rec *Record) ([]byte, error) {
	return json.Marshal(rec)
}

func (c *JSONCodec) Decode(data []byte) (*Record, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *JSONCodec) Name() string { return CodecNameJSON }

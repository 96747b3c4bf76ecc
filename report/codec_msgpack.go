package report

import "github.com/vmihailenco/msgpack/v5"

// MsgpackCodec encodes/decodes event records as MessagePack.
type MsgpackCodec struct{}

func (c *MsgpackCodec) Encode(rec *Record) ([]byte, error) {
	return msgpack.Marshal(rec)
}

func (c *MsgpackCodec) Decode(data []byte) (*Record, error) {
	var r Record
	if err := msgpack.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *MsgpackCodec) Name() string { return CodecNameMsgpack }

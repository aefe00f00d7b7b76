package domain

import (
	"encoding/json"
	"fmt"
)

type envelope struct {
	Type ContentType     `json:"type"`
	Data json.RawMessage `json:"data"`
}

// MarshalContent encodes c with its type discriminator.
func MarshalContent(c Content) ([]byte, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", c.Type(), err)
	}
	return json.Marshal(envelope{Type: c.Type(), Data: data})
}

// UnmarshalContent rebuilds the variant named by the discriminator.
func UnmarshalContent(raw []byte) (Content, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("unmarshal content envelope: %w", err)
	}
	c, ok := New(env.Type)
	if !ok {
		return nil, fmt.Errorf("unknown content type %q", env.Type)
	}
	if err := json.Unmarshal(env.Data, c); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", env.Type, err)
	}
	return c, nil
}

// Clone returns a deep copy of c.
func Clone(c Content) (Content, error) {
	raw, err := MarshalContent(c)
	if err != nil {
		return nil, err
	}
	return UnmarshalContent(raw)
}

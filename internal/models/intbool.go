package models

import (
	"encoding/json"
	"fmt"
)

// IntBool is a custom type to handle boolean flags the vendor encodes as
// 0/1 numbers, but which may also appear as plain JSON booleans.
type IntBool bool

func (b *IntBool) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch val := v.(type) {
	case nil:
		*b = false
	case bool:
		*b = IntBool(val)
	case float64:
		*b = val == 1
	default:
		return fmt.Errorf("IntBool: unexpected type %T", v)
	}
	return nil
}

func (b IntBool) Bool() bool {
	return bool(b)
}

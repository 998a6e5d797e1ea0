package script

import (
	"encoding/json"

	scriptModel "github.com/slugline/slugline-go/lib/models/script"
)

// Marshal encodes the wire form snapshots store. Every field of every
// line record survives the round trip; restore depends on that.
func Marshal(ser scriptModel.Serialized) (string, error) {
	encoded, err := json.Marshal(ser)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// Unmarshal decodes content produced by Marshal.
func Unmarshal(content string) (scriptModel.Serialized, error) {
	var ser scriptModel.Serialized
	if err := json.Unmarshal([]byte(content), &ser); err != nil {
		return scriptModel.Serialized{}, err
	}
	return ser, nil
}

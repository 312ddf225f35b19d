package skeleton

import (
	"bytes"
	_ "embed"
	"fmt"
)

//go:embed quadruped.urdf
var builtinURDF []byte

// Builtin returns a fresh copy of the embedded quadruped.
func Builtin() (*Model, error) {
	m, err := Parse(bytes.NewReader(builtinURDF))
	if err != nil {
		return nil, fmt.Errorf("builtin model: %w", err)
	}
	return m, nil
}

package manifest

import _ "embed"

//go:embed starter.yaml
var starter []byte

// Starter returns a small, commented manifest suitable as a starting point.
func Starter() []byte { return append([]byte(nil), starter...) }

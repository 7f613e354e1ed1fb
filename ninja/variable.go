package ninja

// Variable is a name/value binding, rendered as "name = value".
//
// Neither field is escaped or validated. Values are ninja expressions, so a
// literal '$' must be escaped by the caller (see [Escape]).
type Variable struct {
	Name  string `json:"name"  yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// NewVariable returns a Variable binding name to value.
func NewVariable(name, value string) Variable {
	return Variable{Name: name, Value: value}
}

// String returns "name = value" without a trailing newline.
func (v Variable) String() string {
	return v.Name + " = " + v.Value
}

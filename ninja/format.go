package ninja

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// WriteTo writes f in ninja syntax to w.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, f.String())

	return int64(n), err
}

// Format writes f in ninja syntax to w.
func (f *File) Format(_ context.Context, w io.Writer) error {
	_, err := f.WriteTo(w)

	return err
}

// FormatJSON writes the statement model of f as JSON to w.
func (f *File) FormatJSON(_ context.Context, w io.Writer, indent int) error {
	var (
		data []byte
		err  error
	)

	if indent > 0 {
		data, err = json.MarshalIndent(f.records(), "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(f.records())
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

// FormatYAML writes the statement model of f as YAML to w.
func (f *File) FormatYAML(ctx context.Context, w io.Writer, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, f.records(), opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(data))

	return err
}

// record is the serialized form of one statement.
type record struct {
	Kind            string     `json:"kind"                       yaml:"kind"`
	Name            string     `json:"name,omitempty"             yaml:"name,omitempty"`
	Value           string     `json:"value,omitempty"            yaml:"value,omitempty"`
	Text            string     `json:"text,omitempty"             yaml:"text,omitempty"`
	Rule            string     `json:"rule,omitempty"             yaml:"rule,omitempty"`
	Outputs         []string   `json:"outputs,omitempty"          yaml:"outputs,omitempty"`
	ImplicitOutputs []string   `json:"implicit_outputs,omitempty" yaml:"implicit_outputs,omitempty"`
	Inputs          []string   `json:"inputs,omitempty"           yaml:"inputs,omitempty"`
	Implicit        []string   `json:"implicit,omitempty"         yaml:"implicit,omitempty"`
	OrderOnly       []string   `json:"order_only,omitempty"       yaml:"order_only,omitempty"`
	Validations     []string   `json:"validations,omitempty"      yaml:"validations,omitempty"`
	Variables       []Variable `json:"variables,omitempty"        yaml:"variables,omitempty"`
}

func (f *File) records() []record {
	stmts := f.list.snapshot()
	out := make([]record, 0, len(stmts))

	for _, s := range stmts {
		if s.hidden() {
			continue
		}

		r := record{Kind: s.kind.String()}

		switch s.kind {
		case KindComment, KindSubninja, KindInclude:
			r.Text = s.text

		case KindRule:
			r.Name = s.rule.name
			r.Variables = s.rule.Variables()

		case KindBuild:
			b := s.build
			r.Rule = b.rule
			r.Outputs = b.Outputs()
			r.ImplicitOutputs = b.ImplicitOutputs()
			r.Inputs = b.Dependencies()
			r.Implicit = b.ImplicitDependencies()
			r.OrderOnly = b.OrderOnlyDependencies()
			r.Validations = b.ValidationList()
			r.Variables = b.Variables()

		case KindVariable:
			r.Name = s.variable.Name
			r.Value = s.variable.Value

		case KindDefault:
			r.Outputs = s.Defaults()

		case KindPool:
			r.Name = s.pool.name
			r.Variables = s.pool.Variables()
		}

		out = append(out, r)
	}

	return out
}

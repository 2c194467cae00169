package vegalite

import (
	"fmt"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// New returns a Spec pinned to the v4 schema URL. Fields are filled in by the
// caller or, more commonly, through the dsl package.
func New() *Spec {
	return &Spec{Schema: SchemaURL}
}

// JSON serializes the spec to the grammar's compact JSON text form.
func (s *Spec) JSON() ([]byte, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, Issues{{Path: "/", Code: CodeParseError, Message: "spec does not serialize", Cause: err}}
	}
	return b, nil
}

// String renders the indented JSON text form. Serialization of a well-formed
// spec cannot fail; a failure here indicates a non-JSON value was smuggled into
// an any-typed field and is reported inline.
func (s *Spec) String() string {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Sprintf("vegalite: unserializable spec: %v", err)
	}
	return string(b)
}

// FromJSON deserializes a spec document from the grammar's JSON text form.
func FromJSON(b []byte) (*Spec, error) {
	var s Spec
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, Issues{{Path: "/", Code: CodeParseError, Message: "invalid spec document", Cause: err}}
	}
	return &s, nil
}

// FromYAML deserializes a YAML-authored spec document. The document is bridged
// through its JSON value form so that grammar short forms (a bare-string mark)
// decode the same way in both syntaxes.
func FromYAML(b []byte) (*Spec, error) {
	var v any
	if err := yaml.Unmarshal(b, &v); err != nil {
		return nil, Issues{{Path: "/", Code: CodeParseError, Message: "invalid YAML document", Cause: err}}
	}
	jb, err := json.Marshal(v)
	if err != nil {
		return nil, Issues{{Path: "/", Code: CodeParseError, Message: "document does not map onto JSON", Cause: err}}
	}
	return FromJSON(jb)
}

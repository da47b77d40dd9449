// Package form encodes committed tags for submission.
//
// The form encoding mirrors one hidden input per tag: a repeated tags[]
// field carrying the tag IDs in order. The structured encodings carry both
// the IDs and the labels.
package form

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/taginput/buffer"
)

// Format names a submission encoding.
type Format string

const (
	FormatForm    Format = "form"
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatMsgpack Format = "msgpack"
)

// FieldName is the repeated form field holding tag IDs.
const FieldName = "tags[]"

var ErrUnknownFormat = errors.New("form: unknown format")

// Formats lists the supported encodings.
func Formats() []Format {
	return []Format{FormatForm, FormatJSON, FormatYAML, FormatMsgpack}
}

// ParseFormat maps a name to a Format, ignoring case and surrounding space.
// An empty name is FormatForm.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return FormatForm, nil
	}
	if name == "yml" {
		return FormatYAML, nil
	}
	for _, f := range Formats() {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Submission is the structured payload.
type Submission struct {
	Values []string     `json:"values" yaml:"values" msgpack:"values"`
	Tags   []buffer.Tag `json:"tags" yaml:"tags" msgpack:"tags"`
}

// NewSubmission builds the payload for tags. Empty input yields empty, non-nil
// lists so encoders emit [] rather than null.
func NewSubmission(tags []buffer.Tag) Submission {
	s := Submission{
		Values: make([]string, 0, len(tags)),
		Tags:   make([]buffer.Tag, 0, len(tags)),
	}
	for _, t := range tags {
		s.Values = append(s.Values, t.ID)
		s.Tags = append(s.Tags, t)
	}
	return s
}

// Values returns the form fields for tags, one tags[] value per tag.
func Values(tags []buffer.Tag) url.Values {
	v := url.Values{}
	for _, t := range tags {
		v.Add(FieldName, t.ID)
	}
	return v
}

// Encode renders tags in format f.
func Encode(f Format, tags []buffer.Tag) ([]byte, error) {
	switch f {
	case FormatForm:
		return []byte(Values(tags).Encode()), nil
	case FormatJSON:
		data, err := json.Marshal(NewSubmission(tags))
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return data, nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(NewSubmission(tags)); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	case FormatMsgpack:
		data, err := msgpack.Marshal(NewSubmission(tags))
		if err != nil {
			return nil, fmt.Errorf("encode msgpack: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

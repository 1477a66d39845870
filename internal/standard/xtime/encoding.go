// Copyright 2026 Peter Edge
//
// All rights reserved.

package xtime

import (
	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler, producing the ISO form.
// This also drives JSON marshaling.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseDate.
// This also drives JSON unmarshaling.
func (d *Date) UnmarshalText(data []byte) error {
	date, err := ParseDate(string(data))
	if err != nil {
		return err
	}
	*d = date
	return nil
}

// MarshalYAML implements yaml.Marshaler, producing the ISO form.
func (d Date) MarshalYAML() (any, error) {
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler via ParseDate.
func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	var value string
	if err := node.Decode(&value); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(value))
}

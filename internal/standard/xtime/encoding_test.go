// Copyright 2026 Peter Edge
//
// All rights reserved.

package xtime

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestMarshalJSON(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		value any
		want  string
	}{
		{Date{1987, 4, 15}, `"1987-04-15"`},
		// The year is not zero-padded in the ISO form.
		{Date{999, 1, 26}, `"999-01-26"`},
	} {
		bgot, err := json.Marshal(test.value)
		if err != nil {
			t.Fatal(err)
		}
		if got := string(bgot); got != test.want {
			t.Errorf("%#v: got %s, want %s", test.value, got, test.want)
		}
	}
}

func TestUnmarshalJSON(t *testing.T) {
	t.Parallel()
	var date Date
	for _, test := range []struct {
		data string
		ptr  any
		want any
	}{
		{`"1987-04-15"`, &date, &Date{1987, 4, 15}},
		{`"999-01-26"`, &date, &Date{999, 1, 26}},
	} {
		if err := json.Unmarshal([]byte(test.data), test.ptr); err != nil {
			t.Fatalf("%s: %v", test.data, err)
		}
		if !cmp.Equal(test.ptr, test.want) {
			t.Errorf("%s: got %#v, want %#v", test.data, test.ptr, test.want)
		}
	}

	for _, bad := range []string{"", `""`, `"bad"`, `"1987-04-15x"`,
		`"1987-04-31"`, // parses but is not a real date
		`19870415`,     // a JSON number
		`11987-04-15x`, // not a JSON string

	} {
		if json.Unmarshal([]byte(bad), &date) == nil {
			t.Errorf("%q, Date: got nil, want error", bad)
		}
	}
}

func TestMarshalYAML(t *testing.T) {
	t.Parallel()
	type doc struct {
		Start Date `yaml:"start"`
		End   Date `yaml:"end"`
	}
	data, err := yaml.Marshal(doc{
		Start: Date{2024, 2, 29},
		End:   Date{2024, 3, 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	// yaml.v3 quotes the scalars because the plain forms would resolve as
	// timestamps.
	want := "start: \"2024-02-29\"\nend: \"2024-03-01\"\n"
	if got := string(data); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestUnmarshalYAML(t *testing.T) {
	t.Parallel()
	type doc struct {
		Start Date `yaml:"start"`
		End   Date `yaml:"end"`
	}
	var got doc
	if err := yaml.Unmarshal([]byte("start: 2024-02-29\nend: 2024-03-01\n"), &got); err != nil {
		t.Fatal(err)
	}
	want := doc{
		Start: Date{2024, 2, 29},
		End:   Date{2024, 3, 1},
	}
	if !cmp.Equal(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}

	for _, bad := range []string{
		"start: 2024-02-30\n",    // not a real date
		"start: 2024-02-29-1\n",  // wrong component count
		"start: [2024, 2, 29]\n", // not a scalar
	} {
		var d doc
		if yaml.Unmarshal([]byte(bad), &d) == nil {
			t.Errorf("%q: got nil, want error", bad)
		}
	}
}

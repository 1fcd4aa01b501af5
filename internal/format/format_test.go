package format

import (
	"bytes"
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

type entry struct {
	Name   string `json:"name" yaml:"name"`
	Merged bool   `json:"merged" yaml:"merged"`
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{"", Text, false},
		{"text", Text, false},
		{"json", JSON, false},
		{"JSON", JSON, false},
		{"yaml", YAML, false},
		{"yml", YAML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseKind(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKind(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestKind_Structured(t *testing.T) {
	t.Parallel()
	if Text.Structured() {
		t.Error("Text.Structured() = true, want false")
	}
	if !JSON.Structured() || !YAML.Structured() {
		t.Error("JSON and YAML should be structured")
	}
}

func TestWrite_JSON(t *testing.T) {
	t.Parallel()

	in := []entry{{Name: "main"}, {Name: "feature", Merged: true}}
	var buf bytes.Buffer
	if err := Write(&buf, JSON, in); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	want := "[\n  {\n    \"name\": \"main\",\n    \"merged\": false\n  },\n  {\n    \"name\": \"feature\",\n    \"merged\": true\n  }\n]\n"
	if got := buf.String(); got != want {
		t.Errorf("Write() =\n%s\nwant\n%s", got, want)
	}

	var out []entry
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
}

func TestWrite_YAML(t *testing.T) {
	t.Parallel()

	in := []entry{{Name: "main"}, {Name: "feature", Merged: true}}
	var buf bytes.Buffer
	if err := Write(&buf, YAML, in); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	want := "- name: main\n  merged: false\n- name: feature\n  merged: true\n"
	if got := buf.String(); got != want {
		t.Errorf("Write() =\n%s\nwant\n%s", got, want)
	}

	var out []entry
	if err := yaml.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
}

func TestWrite_Empty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want string
	}{
		{JSON, "[]\n"},
		{YAML, "[]\n"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		if err := Write(&buf, tt.kind, []entry{}); err != nil {
			t.Fatalf("Write(%s) error = %v", tt.kind, err)
		}
		if got := buf.String(); got != tt.want {
			t.Errorf("Write(%s, empty) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestWrite_Text(t *testing.T) {
	t.Parallel()
	if err := Write(&bytes.Buffer{}, Text, nil); err == nil {
		t.Error("Write(Text) = nil, want error")
	}
}

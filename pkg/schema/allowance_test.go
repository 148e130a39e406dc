package schema

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestAllowance_String(t *testing.T) {
	tests := []struct {
		name      string
		allowance Allowance
		want      string
	}{
		{
			name:      "can",
			allowance: Can,
			want:      "can",
		},
		{
			name:      "must",
			allowance: Must,
			want:      "must",
		},
		{
			name:      "cannot",
			allowance: Cannot,
			want:      "cannot",
		},
		{
			name:      "out of range",
			allowance: Allowance(99),
			want:      "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.allowance.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseAllowance(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Allowance
		wantErr bool
	}{
		{
			name:  "lowercase can",
			input: "can",
			want:  Can,
		},
		{
			name:  "uppercase must",
			input: "MUST",
			want:  Must,
		},
		{
			name:  "padded cannot",
			input: "  cannot ",
			want:  Cannot,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "unknown word",
			input:   "maybe",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAllowance(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseAllowance(%q) error = nil, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAllowance(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseAllowance(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAllowance_UnmarshalYAML(t *testing.T) {
	var doc struct {
		Ephemeral Allowance `yaml:"ephemeral"`
	}

	if err := yaml.Unmarshal([]byte("ephemeral: must\n"), &doc); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if doc.Ephemeral != Must {
		t.Errorf("Ephemeral = %v, want Must", doc.Ephemeral)
	}

	if err := yaml.Unmarshal([]byte("ephemeral: sometimes\n"), &doc); err == nil {
		t.Error("Unmarshal() error = nil for invalid allowance, want error")
	}
}

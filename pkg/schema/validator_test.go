package schema

import (
	"regexp"
	"testing"
)

func TestValidators(t *testing.T) {
	tests := []struct {
		name      string
		validator DataValidator
		data      []byte
		valid     bool
	}{
		{
			name:      "accept all empty",
			validator: AcceptAll(),
			data:      nil,
			valid:     true,
		},
		{
			name:      "accept all arbitrary bytes",
			validator: AcceptAll(),
			data:      []byte{0x00, 0xff, 0x80},
			valid:     true,
		},
		{
			name:      "json empty is valid",
			validator: JSONData(),
			data:      nil,
			valid:     true,
		},
		{
			name:      "json object",
			validator: JSONData(),
			data:      []byte(`{"host":"a","port":2181}`),
			valid:     true,
		},
		{
			name:      "json malformed",
			validator: JSONData(),
			data:      []byte(`{"host":`),
			valid:     false,
		},
		{
			name:      "utf8 text",
			validator: UTF8Data(),
			data:      []byte("héllo"),
			valid:     true,
		},
		{
			name:      "utf8 invalid sequence",
			validator: UTF8Data(),
			data:      []byte{0xff, 0xfe},
			valid:     false,
		},
		{
			name:      "regex matching",
			validator: RegexData(regexp.MustCompile(`^[a-z]+$`)),
			data:      []byte("hostname"),
			valid:     true,
		},
		{
			name:      "regex not matching",
			validator: RegexData(regexp.MustCompile(`^[a-z]+$`)),
			data:      []byte("HOST"),
			valid:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.validator.IsValid(tt.data); got != tt.valid {
				t.Errorf("IsValid(%q) = %t, want %t", tt.data, got, tt.valid)
			}
		})
	}
}

func TestValidatorNames(t *testing.T) {
	if got := AcceptAll().Name(); got != "accept_all" {
		t.Errorf("AcceptAll().Name() = %q, want %q", got, "accept_all")
	}
	if got := JSONData().Name(); got != "json" {
		t.Errorf("JSONData().Name() = %q, want %q", got, "json")
	}
	if got := UTF8Data().Name(); got != "utf8" {
		t.Errorf("UTF8Data().Name() = %q, want %q", got, "utf8")
	}
	if got := RegexData(regexp.MustCompile("abc")).Name(); got != "regex(abc)" {
		t.Errorf("RegexData().Name() = %q, want %q", got, "regex(abc)")
	}
}

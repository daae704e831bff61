package suffix

import (
	"testing"
)

func TestFactory(t *testing.T) {
	tests := []struct {
		name   string
		config string
		input  string
		want   string
	}{
		{"default literal", "", "test", "test:SUFFIX"},
		{"default on empty line", "", "", ":SUFFIX"},
		{"custom literal", "|end", "message", "message|end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transform, err := New()(tt.config)
			if err != nil {
				t.Fatalf("factory: %v", err)
			}
			got, err := transform([]byte(tt.input))
			if err != nil {
				t.Fatalf("Transform: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

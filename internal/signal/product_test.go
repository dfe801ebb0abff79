package signal

import "testing"

func TestIsProductKeyword(t *testing.T) {
	tests := []struct {
		name    string
		keyword string
		want    bool
	}{
		{"Short product query", "pdf converter", true},
		{"Short root only", "invoice generator", true},
		{"Short non-product", "tax deadline", false},
		{"Strong need signal wins", "struggling with pdf converter tool", false},
		{"How-to is a need", "how to fix excel formula errors", false},
		{"Dense product phrase", "free online pdf to excel converter", true},
		{"Long need phrase", "why does my spreadsheet keep crashing", false},
		{"Single word", "calculator", true},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsProductKeyword(tt.keyword); got != tt.want {
				t.Errorf("IsProductKeyword(%q) = %v, want %v", tt.keyword, got, tt.want)
			}
		})
	}
}

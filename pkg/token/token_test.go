package token

import (
	"encoding/base64"
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	token, err := Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if token == "" {
		t.Error("Generate() returned empty token")
	}

	decoded, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		t.Errorf("Generate() returned invalid base64: %v", err)
	}
	if len(decoded) != DefaultLength {
		t.Errorf("Generate() decoded length = %d, want %d", len(decoded), DefaultLength)
	}
}

func TestGenerate_Uniqueness(t *testing.T) {
	tokens := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := Generate()
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if tokens[token] {
			t.Errorf("Generate() produced duplicate token: %s", token)
		}
		tokens[token] = true
	}
}

func TestGenerateWithLength(t *testing.T) {
	tests := []struct {
		name   string
		length int
	}{
		{"16 bytes", 16},
		{"32 bytes", 32},
		{"64 bytes", 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := GenerateWithLength(tt.length)
			if err != nil {
				t.Fatalf("GenerateWithLength(%d) error = %v", tt.length, err)
			}

			decoded, err := base64.RawURLEncoding.DecodeString(token)
			if err != nil {
				t.Errorf("GenerateWithLength(%d) returned invalid base64: %v", tt.length, err)
			}
			if len(decoded) != tt.length {
				t.Errorf("GenerateWithLength(%d) decoded length = %d", tt.length, len(decoded))
			}
		})
	}
}

func TestHash(t *testing.T) {
	token := "test-token-12345"
	hash := Hash(token)

	if len(hash) != 64 {
		t.Errorf("Hash() length = %d, want 64", len(hash))
	}
	if strings.ToLower(hash) != hash {
		t.Error("Hash() should return lowercase hex")
	}
	if Hash(token) != hash {
		t.Error("Hash() is not deterministic")
	}
	if Hash("other-token") == hash {
		t.Error("Hash() produced same hash for different inputs")
	}
}

func BenchmarkGenerate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Generate()
	}
}

func BenchmarkHash(b *testing.B) {
	token := "benchmark-token-12345"
	for i := 0; i < b.N; i++ {
		Hash(token)
	}
}

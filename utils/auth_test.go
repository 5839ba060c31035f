package utils

import "testing"

func TestGenerateWorkshopID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		id := GenerateWorkshopID()
		if len(id) != 18 {
			t.Fatalf("expected 18 characters, got %d (%q)", len(id), id)
		}
		for _, r := range id {
			if !(r >= '0' && r <= '9' || r >= 'A' && r <= 'F') {
				t.Fatalf("unexpected character %q in %q", r, id)
			}
		}
		if seen[id] {
			t.Fatalf("duplicate workshop id %q", id)
		}
		seen[id] = true
	}
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := GenerateToken("user", "WS1", "owner"); err == nil {
		t.Fatal("expected error without JWT_SECRET")
	}

	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateToken("user", "WS1", "owner")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if token == "" {
		t.Fatal("expected a signed token")
	}
}

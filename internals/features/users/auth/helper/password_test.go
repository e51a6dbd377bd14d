package helper

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash equals plaintext")
	}

	if !CheckPasswordHash("s3cret-pass", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrong-pass", hash) {
		t.Error("wrong password accepted")
	}
}

func TestValidateRegisterInput(t *testing.T) {
	cases := []struct {
		name     string
		email    string
		password string
		wantErr  bool
	}{
		{"valid", "dev@example.com", "longenough", false},
		{"empty email", "", "longenough", true},
		{"empty password", "dev@example.com", "", true},
		{"bad email", "not-an-email", "longenough", true},
		{"short password", "dev@example.com", "short", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRegisterInput(tc.email, tc.password)
			if (err != nil) != tc.wantErr {
				t.Errorf("ValidateRegisterInput(%q, %q) err = %v, wantErr %v",
					tc.email, tc.password, err, tc.wantErr)
			}
		})
	}
}

func TestValidateLoginInput(t *testing.T) {
	if err := ValidateLoginInput("dev@example.com", "anything"); err != nil {
		t.Errorf("valid login input rejected: %v", err)
	}
	if err := ValidateLoginInput("", "anything"); err == nil {
		t.Error("empty email accepted")
	}
	if err := ValidateLoginInput("dev@example.com", ""); err == nil {
		t.Error("empty password accepted")
	}
}

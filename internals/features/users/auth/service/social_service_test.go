package service

import "testing"

func TestUsernameFromEmail(t *testing.T) {
	cases := []struct {
		email   string
		want    string
		wantNil bool
	}{
		{"jane.doe@example.com", "jane.doe", false},
		{"a@b.c", "a", false},
		{"@example.com", "", true},
		{"no-at-sign", "", true},
	}
	for _, tc := range cases {
		got := usernameFromEmail(tc.email)
		if tc.wantNil {
			if got != nil {
				t.Errorf("usernameFromEmail(%q) = %q, want nil", tc.email, *got)
			}
			continue
		}
		if got == nil || *got != tc.want {
			t.Errorf("usernameFromEmail(%q) = %v, want %q", tc.email, got, tc.want)
		}
	}
}

package helper

import "testing"

func TestBuildPagination(t *testing.T) {
	p := BuildPagination(45, 2, 20)

	if p.TotalPages != 3 {
		t.Errorf("total pages = %d, want 3", p.TotalPages)
	}
	if !p.HasNext || !p.HasPrev {
		t.Errorf("has_next/has_prev = %v/%v, want true/true", p.HasNext, p.HasPrev)
	}
}

func TestBuildPaginationEmpty(t *testing.T) {
	p := BuildPagination(0, 1, 20)

	if p.TotalPages != 1 {
		t.Errorf("total pages = %d, want 1", p.TotalPages)
	}
	if p.HasNext || p.HasPrev {
		t.Errorf("has_next/has_prev = %v/%v, want false/false", p.HasNext, p.HasPrev)
	}
}

func TestStatusToErrorCode(t *testing.T) {
	cases := map[int]string{
		400: "BAD_REQUEST",
		401: "UNAUTHORIZED",
		403: "FORBIDDEN",
		404: "NOT_FOUND",
		409: "CONFLICT",
		422: "VALIDATION_ERROR",
		500: "INTERNAL_ERROR",
		418: "ERROR",
	}
	for status, want := range cases {
		if got := statusToErrorCode(status); got != want {
			t.Errorf("statusToErrorCode(%d) = %s, want %s", status, got, want)
		}
	}
}

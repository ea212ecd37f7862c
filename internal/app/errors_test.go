package app

import (
	"errors"
	"testing"

	"github.com/dshills/quill/internal/engine/document"
	"github.com/dshills/quill/internal/engine/source"
)

func TestOperationError(t *testing.T) {
	base := errors.New("permission denied")
	err := NewOperationError("load", "/etc/shadow", base)

	if err.Error() != "load /etc/shadow: permission denied" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, base) {
		t.Error("expected errors.Is to match wrapped error")
	}
	if !errors.Is(err, err) {
		t.Error("expected errors.Is to match itself")
	}

	err.WithContext("startup")
	if err.Error() != "load /etc/shadow (startup): permission denied" {
		t.Errorf("unexpected message with context %q", err.Error())
	}

	var nilErr *OperationError
	if nilErr.WithContext("x") != nil {
		t.Error("expected nil WithContext on nil receiver")
	}
	if nilErr.Error() != "" {
		t.Error("expected empty message on nil receiver")
	}
}

func TestComponentError(t *testing.T) {
	base := errors.New("boom")

	tests := []struct {
		err  *ComponentError
		want string
	}{
		{NewComponentError("backend", "init", base), "backend: init: boom"},
		{NewComponentError("backend", "init", nil), "backend: init"},
		{NewComponentError("backend", "", base), "backend: boom"},
		{NewComponentError("backend", "", nil), "backend"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}

	if !errors.Is(tests[0].err, base) {
		t.Error("expected errors.Is to match wrapped error")
	}
}

func TestErrorTaxonomy(t *testing.T) {
	loadErr := NewOperationError("load", "x.txt", &source.LoadError{Path: "x.txt", Err: errors.New("missing")})
	if !errors.Is(loadErr, ErrLoad) {
		t.Error("expected load failure to match ErrLoad")
	}

	rangeErr := NewComponentError("renderer", "render", &document.RangeError{Index: 5, Count: 3})
	if !errors.Is(rangeErr, ErrOutOfRange) {
		t.Error("expected range failure to match ErrOutOfRange")
	}

	io := ioError("write", errors.New("EPIPE"))
	if !errors.Is(io, ErrIO) {
		t.Error("expected terminal failure to match ErrIO")
	}
	if errors.Is(io, ErrLoad) {
		t.Error("expected terminal failure not to match ErrLoad")
	}
}

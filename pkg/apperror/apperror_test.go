package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestBusinessError(t *testing.T) {
	err := New("cari '%s' zaten mevcut", "ABC")

	if err.Error() != "cari 'ABC' zaten mevcut" {
		t.Errorf("message: got %q", err.Error())
	}
	if !IsBusiness(err) {
		t.Error("expected IsBusiness to be true")
	}
	if IsNotFound(err) {
		t.Error("a business error is not a not-found error")
	}
}

func TestNotFoundError(t *testing.T) {
	err := NotFound("kayıt bulunamadı")

	if !IsNotFound(err) {
		t.Error("expected IsNotFound to be true")
	}
	if IsBusiness(err) {
		t.Error("a not-found error is not a business error")
	}
}

func TestWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("service layer: %w", New("invalid state"))
	if !IsBusiness(wrapped) {
		t.Error("IsBusiness should unwrap")
	}

	wrapped = fmt.Errorf("service layer: %w", NotFound("gone"))
	if !IsNotFound(wrapped) {
		t.Error("IsNotFound should unwrap")
	}

	if IsBusiness(errors.New("plain")) || IsNotFound(errors.New("plain")) {
		t.Error("plain errors should match neither classifier")
	}
}

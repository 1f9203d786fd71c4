// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/vaultpull/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "vault_not_found_error",
			code:    errors.ErrVaultNotFound,
			message: "vault root does not exist",
			wantStr: "[VAULT_NOT_FOUND] vault root does not exist",
		},
		{
			name:    "source_missing_error",
			code:    errors.ErrSourceMissing,
			message: "Dashboard.md not in vault",
			wantStr: "[SOURCE_MISSING] Dashboard.md not in vault",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "invalid configuration",
			wantStr: "[INVALID_INPUT] invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		format  string
		args    []interface{}
		wantMsg string
	}{
		{
			name:    "format_with_string",
			code:    errors.ErrInvalidInput,
			format:  "invalid value: %s",
			args:    []interface{}{"test"},
			wantMsg: "invalid value: test",
		},
		{
			name:    "format_with_multiple_args",
			code:    errors.ErrCopyFailure,
			format:  "cannot copy %s with mode %o",
			args:    []interface{}{"notes.base", 0644},
			wantMsg: "cannot copy notes.base with mode 644",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.Newf(tt.code, tt.format, tt.args...)

			if err.Message != tt.wantMsg {
				t.Errorf("Newf() message = %q, want %q", err.Message, tt.wantMsg)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrInternal, "internal error")

		if err.Code != errors.ErrInternal {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrInternal)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should keep the wrapped error")
		}

		if !stderrors.Is(err, baseErr) {
			t.Error("errors.Is should find the wrapped error")
		}
	})

	t.Run("wrap_nil_error", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "whatever"); err != nil {
			t.Errorf("Wrap(nil) = %v, want nil", err)
		}
	})

	t.Run("wrapf_formats_message", func(t *testing.T) {
		err := errors.Wrapf(baseErr, errors.ErrCopyFailure, "copy %q failed", "Dashboard.md")

		want := `[COPY_FAILURE] copy "Dashboard.md" failed: base error`
		if got := err.Error(); got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	err := errors.New(errors.ErrVaultNotFound, "no vault")

	if !errors.IsErrorCode(err, errors.ErrVaultNotFound) {
		t.Error("IsErrorCode should match the error's own code")
	}

	if errors.IsErrorCode(err, errors.ErrCopyFailure) {
		t.Error("IsErrorCode should not match a different code")
	}

	if errors.IsErrorCode(stderrors.New("plain"), errors.ErrVaultNotFound) {
		t.Error("IsErrorCode should not match plain errors")
	}

	// Codes survive wrapping in plain errors
	wrapped := errors.Wrap(err, errors.ErrConfigLoad, "outer")
	if errors.GetErrorCode(wrapped) != errors.ErrConfigLoad {
		t.Errorf("GetErrorCode = %v, want %v", errors.GetErrorCode(wrapped), errors.ErrConfigLoad)
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrSourceMissing, "missing").
		WithDetail("source", "/vault/Dashboard.md").
		WithDetail("origin", "explicit")

	details := errors.GetErrorDetails(err)
	if details["source"] != "/vault/Dashboard.md" {
		t.Errorf("detail source = %v, want /vault/Dashboard.md", details["source"])
	}
	if details["origin"] != "explicit" {
		t.Errorf("detail origin = %v, want explicit", details["origin"])
	}

	if errors.GetErrorDetails(stderrors.New("plain")) != nil {
		t.Error("GetErrorDetails on plain error should be nil")
	}
}

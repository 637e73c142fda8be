package docload_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/docload"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := docload.Errorf(docload.ENOTFOUND, "download %q not found", "test")

	assert.Equal(t, docload.ENOTFOUND, docload.ErrorCode(err))
	assert.Equal(t, "download \"test\" not found", docload.ErrorMessage(err))
	assert.Equal(t, "docload error: code=not_found message=download \"test\" not found", err.Error())
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docload.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docload.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("load: %w", docload.Errorf(docload.EINVALID, "bad input"))

	assert.Equal(t, docload.EINVALID, docload.ErrorCode(err))
	assert.Equal(t, "bad input", docload.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk full")

	assert.Equal(t, docload.EINTERNAL, docload.ErrorCode(err))
	assert.Equal(t, "disk full", docload.ErrorMessage(err))
}

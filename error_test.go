package opdoc_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/opdoc"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := opdoc.Errorf(opdoc.ENOTFOUND, "keyword %q not found", "LDA")

	assert.Equal(t, opdoc.ENOTFOUND, opdoc.ErrorCode(err))
	assert.Equal(t, "keyword \"LDA\" not found", opdoc.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("index: %w", opdoc.Errorf(opdoc.EINVALID, "bad block"))

	assert.Equal(t, opdoc.EINVALID, opdoc.ErrorCode(err))
	assert.Equal(t, "bad block", opdoc.ErrorMessage(err))
}

func TestErrorCode_OtherError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk full")

	assert.Equal(t, opdoc.EINTERNAL, opdoc.ErrorCode(err))
	assert.Equal(t, "disk full", opdoc.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, opdoc.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, opdoc.ErrorMessage(nil))
}

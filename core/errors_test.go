package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.core")
	defer teardown()
	//
	cause := errors.New("boom")
	err := WrapError(cause, ESYNTAX, "cannot parse %s", "a.css")
	assert.Equal(t, ESYNTAX, Code(err))
	assert.Equal(t, "cannot parse a.css: boom", err.Error())
	assert.True(t, errors.Is(err, cause))
	//
	wrapped := fmt.Errorf("loading: %w", err)
	assert.Equal(t, ESYNTAX, Code(wrapped), "code should survive wrapping")
	var e *AppError
	require.True(t, errors.As(wrapped, &e))
	assert.Equal(t, "cannot parse a.css", e.Message)
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, EINTERNAL, Code(errors.New("plain")))
}

func TestErrorWithoutCause(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.core")
	defer teardown()
	//
	err := Error(EMISSING, "no input")
	assert.Equal(t, EMISSING, Code(err))
	assert.Equal(t, "no input (not found)", err.Error())
	assert.Nil(t, errors.Unwrap(err))
	assert.Equal(t, "error 7", ErrorCode(7).String())
}

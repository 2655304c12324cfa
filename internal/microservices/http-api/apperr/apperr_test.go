package apperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBody_WireShape(t *testing.T) {
	b, err := json.Marshal(NotFound().Body())
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":true,"msg":"Objeto no encontrado"}`, string(b))
}

func TestFrom(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		assert.Nil(t, From(nil))
	})

	t.Run("WrappedAppError", func(t *testing.T) {
		wrapped := fmt.Errorf("update manga: %w", BadRequest(MsgCountryNotFound))
		got := From(wrapped)
		assert.Equal(t, http.StatusBadRequest, got.Status)
		assert.Equal(t, MsgCountryNotFound, got.Msg)
	})

	t.Run("UnknownBecomesInternal", func(t *testing.T) {
		cause := errors.New("connection reset")
		got := From(cause)
		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, MsgInternal, got.Msg)
		assert.ErrorIs(t, got, cause)
	})
}

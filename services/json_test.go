package services

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONSerializerSerialize(t *testing.T) {
	e := echo.New()

	t.Run("Valid result", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		err := JSONSerializer{}.Serialize(c, NewTimestampResult(mustParse(t, "2016-11-20")), "")
		require.NoError(t, err)
		assert.JSONEq(t, `{"unix":1479600000000,"utc":"Sun, 20 Nov 2016 00:00:00 GMT"}`, rec.Body.String())
	})

	t.Run("Invalid result keeps null", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		err := JSONSerializer{}.Serialize(c, InvalidResult(), "")
		require.NoError(t, err)
		assert.JSONEq(t, `{"unix":null,"utc":"Invalid Date"}`, rec.Body.String())
	})

	t.Run("Indented", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		err := JSONSerializer{}.Serialize(c, InvalidResult(), "  ")
		require.NoError(t, err)
		assert.Contains(t, rec.Body.String(), "\n  \"unix\": null")
	})
}

func TestJSONSerializerDeserialize(t *testing.T) {
	e := echo.New()

	t.Run("Valid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"unix":1,"utc":"x"}`))
		c := e.NewContext(req, httptest.NewRecorder())

		var got TimestampResult
		require.NoError(t, JSONSerializer{}.Deserialize(c, &got))
		require.NotNil(t, got.Unix)
		assert.Equal(t, int64(1), *got.Unix)
		assert.Equal(t, "x", got.UTC)
	})

	t.Run("Malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"unix":`))
		c := e.NewContext(req, httptest.NewRecorder())

		var got TimestampResult
		err := JSONSerializer{}.Deserialize(c, &got)
		require.Error(t, err)

		he, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, he.Code)
	})
}

func TestMarshalJSON(t *testing.T) {
	data, err := MarshalJSON(InvalidResult())
	require.NoError(t, err)
	assert.JSONEq(t, `{"unix":null,"utc":"Invalid Date"}`, string(data))

	data, err = MarshalJSONIndent(InvalidResult(), "  ")
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  ")
}

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := ParseDate(s)
	require.NoError(t, err)
	return parsed
}

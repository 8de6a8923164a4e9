package services

import (
	"fmt"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
)

var jsonConfig = sonic.ConfigStd

// JSONSerializer is an echo.JSONSerializer backed by sonic
type JSONSerializer struct{}

// Serialize writes i to the response as JSON
func (JSONSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := jsonConfig.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

// Deserialize reads the request body into i
func (JSONSerializer) Deserialize(c echo.Context, i interface{}) error {
	if err := jsonConfig.NewDecoder(c.Request().Body).Decode(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid JSON body: %v", err)).SetInternal(err)
	}
	return nil
}

// MarshalJSON encodes v with the same configuration the HTTP layer uses
func MarshalJSON(v any) ([]byte, error) {
	return jsonConfig.Marshal(v)
}

// MarshalJSONIndent is MarshalJSON with indentation
func MarshalJSONIndent(v any, indent string) ([]byte, error) {
	return jsonConfig.MarshalIndent(v, "", indent)
}

package docs_test

import (
	"encoding/json"
	"testing"

	"github.com/lautarocloudy/api-cuenta-corrientes/cmd/docs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocListsRoutes(t *testing.T) {
	raw, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		Paths       map[string]map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage            `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	for path, method := range map[string]string{
		"/auth/login":                     "post",
		"/balance/clientes/{id}":          "get",
		"/balance/proveedores/por-nombre": "get",
		"/balance/buscar":                 "get",
		"/facturas":                       "post",
		"/facturas/{id}":                  "put",
		"/recibos/buscar":                 "get",
		"/clientes/{id}":                  "delete",
		"/usuarios/{id}/set-password":     "put",
	} {
		assert.Contains(t, doc.Paths[path], method, path)
	}
	assert.Contains(t, doc.Definitions, "dto.InvoiceRequest")
	assert.Contains(t, doc.Definitions, "handlers.ErrorResponse")
}

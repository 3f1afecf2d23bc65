package api_test

import (
	"encoding/json"
	"testing"

	"salesdelivery/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestLoad(t *testing.T) {
	doc, err := api.Load()
	require.NoError(t, err)

	for _, name := range []string{"NewOrder", "NewOrderLine", "NewDeliveryLine", "NewCarrier", "Order", "Error"} {
		assert.Contains(t, doc.Components.Schemas, name)
	}
	assert.NotNil(t, doc.Paths.Find("/orders/{order_id}/delivery-line"))
}

func TestNewDeliveryLineSchema(t *testing.T) {
	doc, err := api.Load()
	require.NoError(t, err)
	schema := doc.Components.Schemas["NewDeliveryLine"].Value

	valid := map[string]any{
		"carrier_id":   "6f1c1b7e-1d3a-4a43-9b44-0c2fb0b5d8f1",
		"price_unit":   "12.40",
		"carrier_name": "USPS",
	}
	require.NoError(t, schema.VisitJSON(valid))

	require.Error(t, schema.VisitJSON(map[string]any{"carrier_id": "6f1c1b7e-1d3a-4a43-9b44-0c2fb0b5d8f1"}))
	require.Error(t, schema.VisitJSON(map[string]any{
		"carrier_id": "6f1c1b7e-1d3a-4a43-9b44-0c2fb0b5d8f1",
		"price_unit": "-1",
	}))
}

func TestRegisterSwagger(t *testing.T) {
	doc, err := api.Load()
	require.NoError(t, err)
	require.NoError(t, api.RegisterSwagger(doc))

	body, err := swag.ReadDoc()
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &parsed))
	assert.Equal(t, "3.0.3", parsed["openapi"])
}

package internal

import (
	"testing"

	"github.com/invopop/jsonschema"
	"github.com/stretchr/testify/assert"
)

func TestGenerateSchema(t *testing.T) {
	type Type struct {
		Endpoint string `json:"endpoint" jsonschema:"required,format=uri,example=https://example.org,description=Endpoint description"`
		Secret   string `json:"secret" jsonschema:"required,description=Secret description"`
		Optional string `json:"optional,omitempty"`
	}

	schema := GenerateSchema[Type]()

	assert.Equal(t, "object", schema.Type)
	assert.ElementsMatch(t, schema.Required, []string{"endpoint", "secret"})
	assert.Equal(t, jsonschema.FalseSchema, schema.AdditionalProperties)

	assert.Equal(t, "string", schema.Properties.Value("endpoint").Type)
	assert.Equal(t, "uri", schema.Properties.Value("endpoint").Format)
	assert.Equal(t, "Endpoint description", schema.Properties.Value("endpoint").Description)
	assert.Contains(t, schema.Properties.Value("endpoint").Examples, "https://example.org")

	assert.Equal(t, "string", schema.Properties.Value("secret").Type)
	assert.Equal(t, "Secret description", schema.Properties.Value("secret").Description)
}

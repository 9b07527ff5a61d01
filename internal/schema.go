package internal

import "github.com/invopop/jsonschema"

// GenerateSchema reflects a descriptive JSON schema from a configuration
// struct. The schema carries example/format/description metadata declared on
// the struct tags, for consumption by configuration UIs.
func GenerateSchema[S any]() jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}

	return *reflector.Reflect(new(S))
}

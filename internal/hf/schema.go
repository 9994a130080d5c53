package hf

import "github.com/invopop/jsonschema"

func generateSchema[S any]() jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}

	jsonSchema := reflector.Reflect(new(S))

	return *jsonSchema
}

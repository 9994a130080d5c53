package hf

// RequestOptions are parameters the router forwards to the underlying
// inference provider on top of the standard chat completion schema. They are
// flattened into the request body as extra fields.
type RequestOptions struct {
	Seed             int      `structs:"seed,omitempty"`
	Stop             []string `structs:"stop,omitempty"`
	FrequencyPenalty float64  `structs:"frequency_penalty,omitempty"`
	PresencePenalty  float64  `structs:"presence_penalty,omitempty"`
}

package hf

import "net/http"

type opt func(*Client)

// WithApiKey sets the bearer token attached to every request.
func WithApiKey(key string) opt {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithBaseUrl sets the URL at which the inference router is available.
//
// If not specified, the public HuggingFace router is used.
func WithBaseUrl(url string) opt {
	return func(c *Client) {
		c.baseUrl = url
	}
}

// WithDefaultModel sets the model used when a request does not name one.
func WithDefaultModel(model string) opt {
	return func(c *Client) {
		c.defaultModel = model
	}
}

// WithHttpClient injects the *http.Client used for all requests.
func WithHttpClient(client *http.Client) opt {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithSaveContext makes the client record the conversation and replay it on
// every chat request.
func WithSaveContext() opt {
	return func(c *Client) {
		c.saveContext = true
	}
}

package hf

import "github.com/cockroachdb/errors"

// ErrTransport marks failures of the HTTP round trip itself: connection
// refused, DNS, TLS. Match with errors.Is.
var ErrTransport = errors.New("transport failure")

// ErrParse marks response bodies that are not valid JSON.
var ErrParse = errors.New("response body is not valid JSON")

// Package api exposes the diary assistant over HTTP. Handlers decode and
// validate JSON requests, call the assistant and encode its results. The
// assistant never fails, so the only error responses are for malformed or
// invalid requests.
package api

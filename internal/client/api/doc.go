// Package api contains the HTTP gateway to the study-group backend.
//
// # Overview
//
// The package provides:
//  1. Transport-agnostic contracts per resource (AuthAPI, GroupAPI,
//     ReviewAPI, UserAPI) aggregated by Client.
//  2. A concrete REST/JSON implementation (HTTPClient) that paces requests
//     with a token-bucket limiter, attaches the stored bearer token and a
//     request id through a RoundTripper, and classifies every failure as an
//     *apperror.Error.
//
// # Error Handling
//
// Failures before a response arrives are apperror.Transport and keep the
// underlying message. Non-2xx responses are apperror.Server (or
// apperror.Unauthorized for 401) with the message read from the body's
// "message", "error", "error.message" or "errors.0.message" field, falling
// back to "request failed with status <code>".
//
// # Concurrency
//
// HTTPClient is safe for concurrent use. All calls honour ctx cancellation.
package api

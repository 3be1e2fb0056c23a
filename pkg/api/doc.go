// Package api defines the request and response messages of the giftshuffler
// RPC services. Messages travel as JSON; see package apiconnect for the
// handlers and clients.
//
// Field names follow the lowerCamelCase JSON mapping. `validate` tags are
// checked by the services with go-playground/validator after names are
// trimmed.
package api

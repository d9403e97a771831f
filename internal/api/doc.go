// Package api handles incoming HTTP requests, routing, request
// validation, and response formatting for the calendar service. It
// translates HTTP concerns into controller operations and maps
// domain, store, and session errors onto status codes.
package api

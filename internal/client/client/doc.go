// Package client talks to the authentication server.
//
// Client is the transport-agnostic contract; GRPCClient implements it over
// gRPC. Values cross the boundary as zkp types and are encoded here, so
// callers never handle wire bytes. The access token returned by a successful
// verification is kept by the client and attached to later calls.
//
// Status codes are mapped to the sentinel errors in errors.go; match them
// with errors.Is.
package client

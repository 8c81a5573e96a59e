package session

import "context"

// Transport is the boundary to the machinery that actually exchanges bytes
// with a device. Implementations own the connection lifecycle; the session
// only translates the command strings fed in and the response structures
// handed back.
//
// A response is a recursively nested value: a map[string]interface{}, a
// []interface{}, or a scalar. Text transports return the raw output as a
// string scalar.
type Transport interface {
	// Run sends one command line and returns its structured reply.
	Run(ctx context.Context, cmd string) (interface{}, error)

	// RunBatch sends an ordered sequence of command lines and returns one
	// reply per line, in order.
	RunBatch(ctx context.Context, cmds []string) ([]interface{}, error)

	// Close releases the underlying connection.
	Close() error
}

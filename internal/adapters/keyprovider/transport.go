package keyprovider

import (
	"context"
	"encoding/json"
)

// Sender is the synchronous JSON-RPC surface of a provider
type Sender interface {
	Send(ctx context.Context, result any, method string, args ...any) error
}

// Request is a single JSON-RPC call for SendAsync
type Request struct {
	Method string
	Params []any
}

// Callback receives the raw result of an asynchronous call exactly once
type Callback func(result json.RawMessage, err error)

// AsyncSender is the callback-style surface expected by drivers that only know sendAsync
type AsyncSender interface {
	SendAsync(ctx context.Context, req Request, callback Callback)
}

// AsyncAdapter implements AsyncSender by forwarding to a synchronous Sender
type AsyncAdapter struct {
	Sender Sender
}

// SendAsync runs the call on its own goroutine and reports through callback
func (a AsyncAdapter) SendAsync(ctx context.Context, req Request, callback Callback) {
	go func() {
		var raw json.RawMessage
		err := a.Sender.Send(ctx, &raw, req.Method, req.Params...)
		if callback != nil {
			callback(raw, err)
		}
	}()
}

var _ AsyncSender = AsyncAdapter{}

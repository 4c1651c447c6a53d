package dbus

// Call is an in-flight asynchronous API call. The result becomes available
// once Done is closed; errors cross the Call exactly as the underlying
// operation produced them.
type Call[T any] struct {
	done   chan struct{}
	result T
	err    error
}

// Wait blocks until the call completes and returns its result.
func (c *Call[T]) Wait() (T, error) {
	<-c.done
	return c.result, c.err
}

// Done returns a channel that is closed when the call has completed.
func (c *Call[T]) Done() <-chan struct{} {
	return c.done
}

// submit schedules fn on the client executor and returns the pending call.
func submit[T any](c *Client, fn func() (T, error)) *Call[T] {
	call := &Call[T]{done: make(chan struct{})}

	c.executor.Go(func() {
		call.result, call.err = fn()
		close(call.done)
	})

	return call
}

// failedCall returns an already completed call. Used when a request fails
// validation before anything is submitted to the executor.
func failedCall[T any](err error) *Call[T] {
	call := &Call[T]{done: make(chan struct{}), err: err}
	close(call.done)

	return call
}

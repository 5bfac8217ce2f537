package server

// Server is the lifecycle every transport managed by this package exposes:
// RunServer blocks until the process is told to stop, Shutdown drains
// in-flight requests and releases the listener.
type Server interface {
	RunServer()
	Shutdown()
}

package server

// Server is the lifecycle contract of the application server.
type Server interface {
	// RunServer serves requests and blocks until a termination signal
	// arrives, then shuts down gracefully.
	RunServer()

	// Shutdown stops accepting connections and waits for in-flight
	// requests, bounded by a fixed timeout.
	Shutdown()
}

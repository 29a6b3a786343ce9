package server

// Server is the lifecycle contract shared by the HTTP and gRPC transports.
// RunServer blocks until the transport stops; Shutdown releases resources.
type Server interface {
	RunServer()
	Shutdown()
}

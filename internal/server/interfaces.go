package server

// Server defines the lifecycle of the application's transport servers.
type Server interface {
	// RunServer serves requests until a stop signal arrives or a transport
	// fails, then shuts every transport down.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}

// transport is a single listener managed by server.
type transport interface {
	RunServer() error
	Shutdown()
}

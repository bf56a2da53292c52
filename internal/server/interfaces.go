package server

// Server is the lifecycle of the transport managed by this package.
type Server interface {
	// RunServer serves requests until SIGTERM, SIGINT or SIGQUIT arrives,
	// then drains in-flight requests and returns.
	RunServer()

	// Shutdown gracefully stops the server.
	Shutdown()
}

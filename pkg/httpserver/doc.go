// Package httpserver wraps http.Server with graceful shutdown, signal
// handling, and structured logging.
//
// Run blocks until the context is cancelled, an interrupt or SIGTERM
// arrives, or the listener fails:
//
//	srv := httpserver.New(httpserver.WithAddr(":3000"), httpserver.WithLogger(log))
//	if err := srv.Run(ctx, handler); err != nil {
//		// handle error
//	}
package httpserver

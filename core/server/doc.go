// Package server holds the HTTP server configuration.
//
// While the start command builds and runs the Fiber application, this
// package defines the settings it reads: the listen port, the API key that
// guards the management endpoints and the maximum request body size.
//
// # Usage
//
// This package is embedded by core/config and read by the start command:
//
//	app := fiber.New(fiber.Config{BodyLimit: cfg.Server.EffectiveBodyLimit()})
//	app.Listen(cfg.Server.Address())
package server

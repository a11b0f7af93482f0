// Package loader registers the HTTP features of the server.
//
// A Feature names itself, says whether it is enabled and mounts its routes
// on a fiber.Router. The start command registers search, catalog and
// integrity on a Manager and calls LoadAll once the global middleware is in
// place; features load in registration order and the first failure aborts
// startup.
package loader

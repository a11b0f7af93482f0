package storage

// NewTransportForTest exposes newTransport to the external test package.
var NewTransportForTest = newTransport

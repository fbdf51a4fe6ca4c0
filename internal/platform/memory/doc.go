// Package memory provides an in-process implementation of store.CardStore.
// It backs the "memory" database backend and the service tests.
package memory

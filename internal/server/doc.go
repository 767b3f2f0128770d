// Package server implements the MCP (Model Context Protocol) server
// that exposes pixel grid and color operations as tools.
//
// The server speaks JSON-RPC 2.0 over stdin/stdout, one message per
// line. Grids created by tools live in an in-memory registry keyed by
// opaque ids; clients thread the id through subsequent calls and
// release it when done. The registry and the image cache are the only
// state the server holds.
//
// A rendering-surface provider is injected at construction and used
// whenever a grid is built from an image file.
package server

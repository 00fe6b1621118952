// Package server exposes the match scan to MCP (Model Context Protocol)
// clients.
//
// The server speaks JSON-RPC 2.0 over a pair of streams, one request or
// response per line. Run binds it to stdin and stdout.
//
// Supported methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// Tools:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//   - image_sample_color: Get color at pixel, optionally compared to an expected color
//   - image_find_matches: Whiten equal neighbor pairs and return or save the result
//
// Decoded images are cached by path for the lifetime of the server. A path
// written by image_find_matches is evicted so the next call reads the new
// file. Tool failures are returned as JSON-RPC errors with code -32000 and the
// Go error string in data.
//
// # Logging
//
// Log lines go to the *log.Logger given to NewWithLogger, never to the
// protocol stream. Failed tool calls are always logged; with debug enabled
// every completed tool call is logged with its duration.
package server

// Package server implements the MCP (Model Context Protocol) front end of
// the image workbench.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Image I/O:
//   - image_load: Load an image into the session
//   - image_save: Write the processed image
//   - image_view: Render original, processed or preview as PNG
//   - image_inspect: Channel statistics and pixel samples
//   - image_reset: Restore the processed image to the original
//
// Session:
//   - session_state: Report state, size and zoom
//
// Transforms:
//   - transform_list: Describe the catalog
//   - transform_preview: Preview a parameterized transform
//   - transform_confirm: Keep the preview
//   - transform_cancel: Drop the preview
//   - transform_apply: Apply a transform in one step
//
// # Error Handling
//
// Tool failures are returned as JSON-RPC errors:
//   - code: -32000 for tool failures, -32602 for malformed arguments
//   - message: the error text
//   - data.class: "io", "range", "state" or "superseded"
//
// # Usage
//
//	srv := server.New(sess, cat, logger)
//	if err := srv.Run(os.Stdin, os.Stdout); err != nil {
//	    logger.Fatal(err)
//	}
package server

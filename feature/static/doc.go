// Package static serves the departure display's files from a local directory.
//
// The feature mounts the document root at "/" with index.html as the
// directory index and directory listings for folders without one, the same
// behaviour as a minimal development file server. Cross-origin headers are
// not set here; core/server wraps every route with the CORS middleware.
package static

// Package http serves the policy desk REST API with chi.
//
// Every /api route except /api/version needs a bearer identity token. The
// change stream at /api/changes is server-sent events and bypasses the gzip
// and timeout middleware that wrap the rest of the API. In file-driver
// deployments uploaded attachments are also served under /blobs/.
package http

// Package classify infers the processing category of a file from its
// extension, falling back to content signature sniffing when the extension
// is unknown.
package classify

// Package evidence resolves the capture date that governs where a media
// file is filed. Extractors are pure lookups: any internal failure, corrupt
// metadata, or missing tooling is reported as absent evidence rather than an
// error.
package evidence

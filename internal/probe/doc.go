// Package probe wraps ffprobe invocations used to read container and stream
// tag dictionaries from video files. ffprobe is an optional host tool; its
// absence surfaces as an error the caller is expected to swallow.
package probe

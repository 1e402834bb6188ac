// Package testsupport provides shared fixtures for the organizer's tests:
// temp-dir layouts, file seeding, an opened audit store, and a stub ffprobe
// binary.
package testsupport

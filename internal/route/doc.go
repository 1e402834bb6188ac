// Package route decides the terminal disposition of a file from its
// category and date evidence, and owns the directory layout the organizer
// produces under the target root.
package route

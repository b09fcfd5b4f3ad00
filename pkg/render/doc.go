// Package render turns USP values and their wire bytes into text: indented
// JSON for people, and C string or C array literals for embedding test
// vectors in firmware sources.
package render

// Package formats provides parsers for the flight scene's asset file formats.
package formats

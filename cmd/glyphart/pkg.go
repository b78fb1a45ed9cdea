// This package implements the command line tool that uses the API.
// It renders an image on the filesystem as text art, using a directory of glyph images
// (one per output character, named after the character code) as the character set.
//
// Output is written to standard output one row at a time.
// See github.com/nebbyJammin/glyphart/pkg/glyphart for the supported file formats.
package main

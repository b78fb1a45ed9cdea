// The glyphart package implements the logic for generating text art from an image and a set of glyph images.
// The image is cut into uniform blocks, and every block is replaced by the glyph whose brightness is closest to it.
// By default, the package decodes .png, .jpg, .jpeg, .gif, .bmp, .tiff and .webp. See RenderReader() and LoadCatalog().
// To support other image formats, use RenderImage() instead or import your custom decoders like so:
/*
import (
	... <other imports>

	_ "mycustomdecoder/mycustomformat" // Here is your custom file format

	...
)
*/
// Start by calling New() or NewDefault(). Pass the options into the constructors (see options.go).
// While all fields are public, treat the converter as immutable once rendering starts.
package glyphart

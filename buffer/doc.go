// Package buffer implements the grapheme-accurate document model behind the
// inkwell editor surface.
//
// Coordinates are 0-based (Row, GraphemeCol). Ranges are half-open: [Start, End).
// Inline images are stored as single atomic clusters of embed markup, so a
// cursor steps over an image in one move and a delete removes it whole.
package buffer

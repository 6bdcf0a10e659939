// Package render draws a merged picture for people: as text with motif
// pixels marked 'O', or as an indexed-colour bitmap written in BMP format
// through golang.org/x/image/bmp.
package render

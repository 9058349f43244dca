// Package flip mirrors packed 3-byte-per-pixel images and tracks which of the
// four mirror orientations is active.
//
// Images are stored rotated by 90 degrees: one memory row of h pixels is one
// display column. MirrorPixels reverses every pixel, MirrorRows reverses the
// row order and MirrorBoth does both. The two single-axis mirrors commute and
// each is its own inverse, so the orientations form the Klein four-group and
// Machine only has to toggle one axis per input.
package flip

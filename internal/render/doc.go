// Package render draws a scene.Scene.
//
// Terminal renders the scene into a string of styled terminal cells for
// the interactive UI. Spheres become discs of block glyphs sized by their
// projected radius; track positions become braille dots on a 2x4 micro
// grid per cell.
//
// Snapshot renders the same scene into an image, supersampled and scaled
// down for smooth edges, for the snapshot command.
package render

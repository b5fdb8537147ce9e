// Package batch runs the chroma-key stripper over a fixed list of sprite
// files.
//
// Each configured Pair is processed in order and in isolation: a missing
// input is skipped, and a decode or encode failure is reported and recorded
// without affecting the remaining pairs. Nothing is retried. Run never
// returns an error for a per-file failure; callers inspect the returned
// Results instead.
//
// Progress is written as plain text lines to the io.Writer given to New:
//
//	Processing public/items/decor_cat_green.png -> public/items/decor_cat.png...
//	  Saved public/items/decor_cat.png
//	File not found: public/items/decor_gnome_green.png
package batch

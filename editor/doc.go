// Package editor provides a Bubble Tea text editor component backed by the
// buffer package.
//
// The component handles keyboard and mouse input, renders only the rows in
// view (documents may run to millions of lines), and exposes host hooks: a
// change callback carrying the full text, a paste callback carrying the
// clipboard items, and a Ref through which a host can read the cursor and
// insert inline images.
package editor

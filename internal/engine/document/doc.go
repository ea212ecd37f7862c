// Package document holds the line buffer the editor displays.
//
// A Document is an ordered sequence of immutable lines in file order. It is
// populated in one step by Load and afterwards only read:
//
//	doc := document.New()
//	doc.Load([]string{"first", "second"})
//	line, err := doc.Row(1) // "second", nil
//
// Row reports ErrOutOfRange for indices past the last line. The viewport
// always clamps the cursor before the renderer queries rows, so seeing that
// error means a caller computed an index on its own.
package document

// Package modal is the detail dialog: a two-state controller that owns the
// dialog's open/closed state, traps keyboard focus while open, restores it
// on close and narrates each change through a polite live region.
//
// # Quick Start
//
//	doc := dom.New()
//	modal.Mount(doc)
//	d, err := modal.New(doc, modal.WithSource(cat), modal.WithLabels(cat.Resolver()))
//	if err != nil {
//	    return err // a dialog anchor is missing
//	}
//	d.Listen(grid) // cards under grid now open the dialog
//
//	// In View():
//	box, x, y := d.Render(screenW, screenH, hoverID, hits)
//
// The controller never caches the dialog's focusable elements. Tab and
// Shift+Tab are resolved against the tree as it is at the keypress, and
// only one trap listener exists per open state however many times Open is
// called.
package modal

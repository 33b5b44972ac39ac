// Package widgets provides ready-made widgets built on the widget base
// object: a measured text box, a margin container, and a fixed-axis layout.
// Each one is a plain construction over [widget.Base] with its fit and
// layout capabilities filled in.
package widgets

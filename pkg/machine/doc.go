/*
Package machine contains the core domain model shared by the translator,
the parser and the interpreter.

It defines the vocabulary of both machine flavours: letters, directions
and state tokens for the two-tape input machine, and the composite tape
symbols (tracked cells, the boundary sentinel, state markers) that only
exist on the single-tape output machine. This package is kept pure and
free of I/O; every value renders to the canonical space-free token used
by the textual machine-description format.

# Key Entities

  - Letter / State / Direction: opaque tokens of the source description.
  - TwoTapeTransition: one 8-field row of a two-tape machine.
  - Transition: one 5-field row of a single-tape machine.
  - TrackedCell: a single-tape symbol packing two virtual-tape letters
    plus a head-occupancy tag.
  - Marker: the hidden simulated-state symbol parked on the sentinel cell.
*/
package machine

/*
Package domain contains the core domain models of the guessing session.

It defines the entities the session controller works with: the immutable
Target held inside a State, the Phase a session moves through, the closed
Ordering produced by comparing a guess against the target, and the
ActionRequests the controller hands to the host for rendering. This package
is kept pure and free of I/O, entropy and persistence concerns.

# Key Entities

  - State: Snapshot of a session (Phase, last input, last guess, Feedback, counters).
  - Phase: AwaitingInput, Validating, Comparing, Continuing or Won.
  - Ordering: Less, Equal or Greater, as returned by Compare.
  - ActionRequest: A structural description of what the host should render or collect.
*/
package domain

/*
Package ports defines the driven ports (interfaces) of the guessing session.

These interfaces decouple the session controller from its collaborators, so the
controller can run against crypto-seeded entropy in production and a fixed
target in tests.

# Key Interfaces

  - TargetGenerator: Produces the session's secret value.
  - Engine: The Start/Render/Navigate contract a host loop drives.
*/
package ports

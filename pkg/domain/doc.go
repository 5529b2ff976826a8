/*
Package domain contains the core data model of inject-env.

It is kept free of I/O: the environment arrives as a snapshot of Variables,
the pipeline turns it into a Mapping, and the outer layers decide where the
rendered text goes.

# Key Entities

  - Variable: a single NAME=VALUE pair as exposed by the operating system.
  - Mapping: the filtered name to value set that gets encoded as JSON.
*/
package domain

/*
Package ports defines the driven ports (interfaces) for inject-env.

These interfaces decouple the pipeline from the process it runs in, so the
environment can be read from the OS in production and from a fixed snapshot
in tests or when embedding the library.

# Key Interfaces

  - EnvironmentSource: Provides the snapshot of environment variables to collect from.
*/
package ports

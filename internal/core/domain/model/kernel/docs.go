// Package kernel contains shared value objects used across the domain model:
// validated UUIDs, WGS84 geo points with great-circle distance, and the actor
// identity recorded in audit history. All types are immutable value objects
// that must be created through their constructors; zero values fail
// validation.
package kernel

// Package kernel contains shared value objects used across the UrbanMart
// domain model: UUID identifiers and Money amounts. Both are immutable and
// must be created through their constructor functions.
package kernel

// Package kernel contains the shared value objects of the logistics domain:
// UUID identifiers, Money amounts, and Geolocation coordinates. All types are
// immutable, validated at construction, and safe for concurrent use. The zero
// value of every type is invalid; use the provided constructors.
package kernel

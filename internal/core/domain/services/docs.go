// Package services contains stateless domain services that operate on
// multiple aggregates or on none, such as quote and discount pricing.
package services

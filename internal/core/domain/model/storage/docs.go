// Package storage contains the VendorStorage read model: a vendor's pickup
// location with its delivery radius and stocked materials. The matching
// engine scans storages and the pricing of offers reads their material rows;
// nothing in the core mutates them.
package storage

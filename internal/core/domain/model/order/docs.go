// Package order contains the Order aggregate and its status state machine.
//
// An order is a client's request for a quantity of one material delivered to
// a point. The status machine drives the order from creation through vendor
// matching, commission payment, transit and final payment to completion, with
// cancellation allowed from every non-terminal state. Each accepted
// transition appends an audit history record.
package order

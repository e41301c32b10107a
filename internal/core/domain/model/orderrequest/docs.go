// Package orderrequest contains the OrderRequest aggregate and its status
// state machine.
//
// An order request is one vendor-storage's candidate offer against one order.
// The matching engine creates requests with route metrics; vendors price them
// into offers; the discount loop (client_want_discount) and client acceptance
// are driven through the state machine, with every accepted transition
// appending an audit history record.
package orderrequest

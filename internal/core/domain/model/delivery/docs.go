// Package delivery provides the DeliveryAssignment aggregate and the
// delivery Organization entity. An assignment links an order to a delivery
// person or organization and runs its own state machine
// (Requested -> Assigned -> InTransit -> Completed, Cancelled before pickup)
// whose transitions drive the parent order's Confirmed/Shipped/Delivered
// moves. Reassignment is rejected once a delivery is in transit or done.
package delivery

package dataset

// Column names of the housing transactions schema. Quantity, PricePerUnit
// and TotalSpent are numeric after coercion; Item and PaymentMethod are
// categorical.
const (
	ColItem          = "Item"
	ColQuantity      = "Quantity"
	ColPricePerUnit  = "PricePerUnit"
	ColTotalSpent    = "TotalSpent"
	ColPaymentMethod = "PaymentMethod"
)

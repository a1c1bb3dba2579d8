package service

// Waiter-facing notice texts.
const (
	msgFeedError = "Error loading orders"

	msgPriceFetchFailed  = "Error fetching food price"
	msgFoodNotFound      = "Food item not found in FoodItems collection"
	msgPriceMalformedFmt = "Invalid food price for %s"
	msgPriceMissingFmt   = "Invalid or missing food price for %s"
	msgTransactionDone   = "Transaction finalized successfully"
	msgTransactionFailed = "Error finalizing transaction"
	msgOrderViewed       = "Order marked as viewed"
	msgOrderViewedFailed = "Error marking order as viewed"
	msgInvalidOrderID    = "Invalid order ID"
)

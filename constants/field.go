package constants

// Canonical field names emitted by the extraction rules. Stable values:
// stored rows and rendered output use these exact strings.
const (
	FieldDate                = "Date"
	FieldTotalAmount         = "TotalAmount"
	FieldSubtotalAmount      = "SubtotalAmount"
	FieldTaxAmount           = "TaxAmount"
	FieldInvoiceNumber       = "InvoiceNumber"
	FieldInvoiceDate         = "InvoiceDate"
	FieldVendorName          = "VendorName"
	FieldReceiptNumber       = "ReceiptNumber"
	FieldMerchantName        = "MerchantName"
	FieldPaymentMethod       = "PaymentMethod"
	FieldAccountNumber       = "AccountNumber"
	FieldStatementPeriod     = "StatementPeriod"
	FieldPurchaseOrderNumber = "PurchaseOrderNumber"
	FieldDeliveryDate        = "DeliveryDate"
)

package document

import "billdesk/internal/taxengine"

// Party holds contact details of the customer or of the issuing business.
type Party struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	GSTIN   string `json:"gstin,omitempty"`
	State   string `json:"state,omitempty"`
}

// LinkedInvoice is an open invoice a payment-in may settle. Allocated is set
// when the user assigned amounts by hand.
type LinkedInvoice struct {
	ID        string           `json:"id"`
	Number    string           `json:"number"`
	Date      string           `json:"date"`
	Balance   taxengine.Amount `json:"balance"`
	Allocated taxengine.Amount `json:"allocated"`
}

// Document is a sales document as the billing screens and upstream API send it.
// Unknown fields are ignored and numbers are decoded leniently.
type Document struct {
	ID             string              `json:"id,omitempty"`
	Number         string              `json:"number"`
	Date           string              `json:"date"`
	DueDate        string              `json:"dueDate,omitempty"`
	ValidUntil     string              `json:"validUntil,omitempty"`
	PlaceOfSupply  string              `json:"placeOfSupply,omitempty"`
	Party          Party               `json:"party"`
	Business       Party               `json:"business"`
	Items          []taxengine.RawItem `json:"items"`
	ReceivedAmount taxengine.Amount    `json:"receivedAmount"`
	Notes          string              `json:"notes,omitempty"`
	Terms          string              `json:"terms,omitempty"`
	VehicleNumber  string              `json:"vehicleNumber,omitempty"`
	TransportName  string              `json:"transportName,omitempty"`

	// Payment-in only.
	Amount         taxengine.Amount `json:"amount"`
	PaymentMode    string           `json:"paymentMode,omitempty"`
	ReferenceNo    string           `json:"referenceNo,omitempty"`
	LinkedInvoices []LinkedInvoice  `json:"linkedInvoices,omitempty"`
}

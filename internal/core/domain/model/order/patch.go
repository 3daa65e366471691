package order

// Patch enumerates the order attributes that may be edited after creation.
// A nil field is left untouched. Status only moves through TransitionTo.
type Patch struct {
	PaymentStatus        *PaymentStatus
	Priority             *Priority
	CustomerName         *string
	CustomerPhone        *string
	CustomerEmail        *string
	DeliveryAddress      *string
	DeliveryNotes        *string
	SpecialInstructions  *string
	EstimatedPrepMinutes *int
}

func (p Patch) IsEmpty() bool {
	return p.PaymentStatus == nil && p.onlyPayment()
}

func (p Patch) onlyPayment() bool {
	return p.Priority == nil &&
		p.CustomerName == nil &&
		p.CustomerPhone == nil &&
		p.CustomerEmail == nil &&
		p.DeliveryAddress == nil &&
		p.DeliveryNotes == nil &&
		p.SpecialInstructions == nil &&
		p.EstimatedPrepMinutes == nil
}

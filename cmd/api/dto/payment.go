package dto

// CheckoutRequest is the payment checkout request schema. Email, when given,
// pre-populates the payment widget.
type CheckoutRequest struct {
	Plan  string `json:"plan" binding:"required" example:"Starter"`
	Email string `json:"email" example:"creator@example.com"`
}

// CheckoutOptionsDTO is the checkout options schema handed to the payment
// widget. Amount is in the currency's smallest unit (paise for INR).
type CheckoutOptionsDTO struct {
	Key         string             `json:"key" example:"rzp_test_abc123"`
	Amount      int                `json:"amount" example:"19900"`
	Currency    string             `json:"currency" example:"INR"`
	Name        string             `json:"name" example:"HookLabe AI"`
	Description string             `json:"description" example:"Starter Plan Subscription"`
	Prefill     CheckoutPrefillDTO `json:"prefill"`
	Theme       CheckoutThemeDTO   `json:"theme"`
}

// CheckoutPrefillDTO pre-populates the payment widget.
type CheckoutPrefillDTO struct {
	Email string `json:"email" example:"creator@example.com"`
}

// CheckoutThemeDTO styles the payment widget.
type CheckoutThemeDTO struct {
	Color string `json:"color" example:"#00E5FF"`
}

// ConfirmPaymentRequest is the payment confirmation request schema. The
// provider payment id comes from the widget's success callback.
type ConfirmPaymentRequest struct {
	Plan              string `json:"plan" binding:"required" example:"Starter"`
	ProviderPaymentID string `json:"provider_payment_id" binding:"required" example:"pay_NvQ7abc123"`
}

// ConfirmPaymentResponse is the payment confirmation response schema.
type ConfirmPaymentResponse struct {
	Plan    string    `json:"plan" example:"Starter"`
	Credits CreditDTO `json:"credits"`
}

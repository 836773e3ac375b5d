package paymentprovider

// Статусы платёжного намерения.
const (
	StatusSucceeded             = "succeeded"
	StatusRequiresPaymentMethod = "requires_payment_method"
	StatusRequiresAction        = "requires_action"
	StatusProcessing            = "processing"
	StatusCanceled              = "canceled"
)

// Типы событий вебхука.
const (
	EventPaymentSucceeded = "payment_intent.succeeded"
	EventPaymentFailed    = "payment_intent.payment_failed"
)

// CreateIntentParams параметры создания платёжного намерения. Amount в минимальных единицах валюты.
type CreateIntentParams struct {
	Amount   int64
	Currency string
	Metadata map[string]string
}

// PaymentIntent платёжное намерение на стороне провайдера.
type PaymentIntent struct {
	ID           string            `json:"id"`
	Object       string            `json:"object"`
	Amount       int64             `json:"amount"`
	Currency     string            `json:"currency"`
	Status       string            `json:"status"`
	ClientSecret string            `json:"client_secret"`
	Metadata     map[string]string `json:"metadata"`
}

// Event событие вебхука.
type Event struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object PaymentIntent `json:"object"`
	} `json:"data"`
}

type errorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// StatusMessage человекочитаемое описание статуса платежа.
func StatusMessage(status string) string {
	switch status {
	case StatusSucceeded:
		return "Payment completed successfully."
	case StatusRequiresPaymentMethod:
		return "Payment failed. Please try again."
	case StatusRequiresAction:
		return "Authentication required to complete the payment."
	case StatusProcessing:
		return "Payment is still processing."
	case StatusCanceled:
		return "Payment was cancelled."
	default:
		return "Unknown payment status."
	}
}

package response

import (
	"car-rental-api/internal/usecase/commands"
)

type PaymentIntentResponse struct {
	IntentID     string `json:"intent_id"`
	ClientSecret string `json:"client_secret"`
}

func FromCreateIntentResult(r *commands.CreateIntentResult) *PaymentIntentResponse {
	return &PaymentIntentResponse{
		IntentID:     r.IntentID,
		ClientSecret: r.ClientSecret,
	}
}

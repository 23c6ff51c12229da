package dto

import "rokto.app/bloodlink/internal/model"

type CreateIntentInput struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

type CreateIntentResponse struct {
	ClientSecret    string `json:"client_secret"`
	PaymentIntentID string `json:"payment_intent_id"`
}

type RecordFundingInput struct {
	Amount          int64  `json:"amount" binding:"required,gt=0"`
	PaymentIntentID string `json:"payment_intent_id" binding:"required"`
}

type PaginatedFundings struct {
	Data []model.Funding `json:"data"`
	Meta PaginationMeta  `json:"meta"`
}

// Package dto contains data transfer objects for the bot domain
package dto

// URLRequest represents an inbound text message carrying a candidate URL
type URLRequest struct {
	ChatID    int64  `json:"chatId"`
	UserID    int64  `json:"userId"`
	MessageID int    `json:"messageId"`
	URL       string `json:"url"`
}

// SelectionRequest represents a decoded format selection action
type SelectionRequest struct {
	ChatID     int64  `json:"chatId"`
	UserID     int64  `json:"userId"`
	MessageID  int    `json:"messageId"`
	CallbackID string `json:"callbackId"`
	SessionKey string `json:"sessionKey"`
	FormatID   string `json:"formatId"`
}

// CancelRequest represents a decoded cancel action
type CancelRequest struct {
	ChatID     int64  `json:"chatId"`
	UserID     int64  `json:"userId"`
	MessageID  int    `json:"messageId"`
	CallbackID string `json:"callbackId"`
	SessionKey string `json:"sessionKey"`
}

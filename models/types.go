package models

// Vote delta constants
const (
	VoteUp   = 1
	VoteDown = -1
)

// Request types

type CreateQuestionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type CreateAnswerRequest struct {
	Content string `json:"content"`
}

// An absent vote field decodes to 0, which fails the {1, -1} check downstream.
type VoteRequest struct {
	Vote int `json:"vote"`
}

// Response types

// MessageResponse is the body for every write acknowledgment and every
// error response: {"message": "..."}.
type MessageResponse struct {
	Message string `json:"message"`
}

// DataResponse wraps every read result: {"data": ...} holding either a
// single object or an array.
type DataResponse struct {
	Data interface{} `json:"data"`
}

// Domain types

type Question struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type Answer struct {
	ID      int    `json:"id"`
	Content string `json:"content"`
}

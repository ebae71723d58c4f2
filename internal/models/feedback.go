package models

// Feedback is a user-submitted note. A client-supplied id is always
// discarded; the server assigns a fresh one on every submission.
type Feedback struct {
	ID           string `json:"id"`
	FeedbackArea string `json:"feedbackArea"`
	FeedbackText string `json:"feedbackText"`
	FeedbackType string `json:"feedbackType"`
}

package models

// Event is a calendar entry. id is optional on create; the server assigns
// one when absent. date is the secondary filter key for list queries.
type Event struct {
	ID    string `json:"id,omitempty"`
	Title string `json:"title"`
	Date  string `json:"date"`
	Time  string `json:"time,omitempty"`
}

// EventDeleteRequest is the DELETE /events payload. Records are addressed
// by id; date is a required field of the contract but not part of the key.
type EventDeleteRequest struct {
	ID   string `json:"id"`
	Date string `json:"date"`
}

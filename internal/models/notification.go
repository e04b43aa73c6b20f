package models

// Notification is an administrative alert with plaintext and rich bodies.
type Notification struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

package email

// Message is a single outbound transactional mail.
type Message struct {
	To          string
	Subject     string
	TextContent string
	HTMLContent string
}

// Service is the outbound mail collaborator. The core never blocks on
// delivery results beyond the initial submission error.
type Service interface {
	Send(msg Message) error
}

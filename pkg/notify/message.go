package notify

// Message is a formatted notification ready for delivery.
type Message struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Format looks up the template for kind and fills it with params.
func Format(kind EventKind, params ...string) Message {
	return Message{
		Title: kind.Title(),
		Body:  Fill(kind.BodyTemplate(), params...),
	}
}

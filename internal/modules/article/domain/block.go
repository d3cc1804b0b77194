package domain

// Block is a declarative description of one visual unit of a chat message.
// Transports translate it into their own markup.
type Block struct {
	Kind      BlockKind `json:"kind"`
	Text      string    `json:"text"`
	Accessory *Image    `json:"accessory,omitempty"`
}

// Image is an image shown alongside a section block
type Image struct {
	URL     string `json:"url"`
	AltText string `json:"alt_text"`
}

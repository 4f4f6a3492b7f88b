package room

// PayloadIn is the format we expect from the JS client
type PayloadIn struct {
	Action string `json:"action"`
	CardID string `json:"cardId,omitempty"`
	AreaID int    `json:"areaId"`
	// Context will be passed back on any outgoing message
	Context string `json:"context,omitempty"`
}

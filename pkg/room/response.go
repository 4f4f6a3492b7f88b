package room

// Response is a message sent to a connected client
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Context string      `json:"context,omitempty"`
}

func newErrorResponse(ctx string, err error) *Response {
	return &Response{
		Key:     "error",
		Value:   err.Error(),
		Context: ctx,
	}
}

package dto

// PipelineStatusMessage is the payload published on the in-process bus for
// every pipeline stage transition.
type PipelineStatusMessage struct {
	ClientId string `json:"client_id"`
	ItemId   string `json:"item_id"`
	FileName string `json:"file_name"`
	Stage    string `json:"stage"`
	Message  string `json:"message"`
	Progress int    `json:"progress"`
	Error    string `json:"error,omitempty"`
}

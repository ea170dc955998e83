package dto

import "encoding/json"

type CreateDocumentRequest struct {
	Title    string          `json:"title"`
	Source   string          `json:"source"`
	Metadata json.RawMessage `json:"metadata"`
}

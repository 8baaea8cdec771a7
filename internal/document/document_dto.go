package document

type UploadDocumentRequest struct {
	Title    string `json:"title" binding:"required"`
	DocType  string `json:"type" binding:"required"`
	FileName string `json:"file_name" binding:"required"`
	FileData string `json:"file_data" binding:"required"`
}

// DocumentResponse never carries the payload; downloads go through the
// dedicated endpoint.
type DocumentResponse struct {
	ID       string `json:"id"`
	OwnerID  string `json:"owner_id"`
	Title    string `json:"title"`
	DocType  string `json:"type"`
	FileName string `json:"file_name"`
	FileSize int64  `json:"file_size"`
	Created  string `json:"created_at"`
}

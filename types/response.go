package types

type UploadResponse struct {
	Message string `json:"message"`
	Paper   *Paper `json:"paper"`
}

type ListPapersResponse struct {
	Papers []*Paper `json:"papers"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries the original error message verbatim.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

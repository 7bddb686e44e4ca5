package responses

type ResponseDTO struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Metadata   Metadata    `json:"metadata"`
}

type ErrorResponseDTO struct {
	Success  bool        `json:"success"`
	Error    ErrorDetail `json:"error"`
	Metadata Metadata    `json:"metadata"`
}

type ErrorDetail struct {
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
	DevMessage string      `json:"devMessage,omitempty"`
	Locations  interface{} `json:"locations,omitempty"`
}

type Pagination struct {
	Page         int `json:"page"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
	TotalPages   int `json:"totalPages"`
}

type Metadata struct {
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// NotFound is the bare body used by array-style routes for unknown ids.
type NotFound struct {
	Error string `json:"error"`
}

type Readiness struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

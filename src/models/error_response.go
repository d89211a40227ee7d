package models

// ErrorResponse โครงสร้างมาตรฐานสำหรับการส่ง Error
type ErrorResponse struct {
	Status  int    `json:"status"`  // HTTP Status Code
	Message string `json:"message"` // รายละเอียดของ Error
}

// MessageResponse is the canned acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

package xltables

import "github.com/ukaji3/xltables-go/pkg/xltables/models"

// Assemble converts an extraction result into the response contract.
// Short-circuit messages are kept; otherwise an empty content reads
// "No tables detected".
func Assemble(filename, fileType string, result *models.ExtractionResult) models.Response {
	resp := models.Response{
		Success:  true,
		Filename: filename,
		Content:  []interface{}{},
		Type:     fileType,
	}
	if result == nil {
		resp.Message = MsgNoTables
		return resp
	}

	resp.Content = result.Content()
	switch {
	case result.Message != "":
		resp.Message = result.Message
	case result.Len() == 0:
		resp.Message = MsgNoTables
	}
	return resp
}

// Failure builds the error response contract.
func Failure(message string, err error) models.ErrorResponse {
	resp := models.ErrorResponse{Message: message}
	if err != nil {
		resp.Details = err.Error()
	}
	return resp
}

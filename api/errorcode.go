package api

import (
	"github.com/bitmark-inc/autonomy-assessment/score"
	"github.com/bitmark-inc/autonomy-assessment/store"
)

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrPatientNotFound.Error(),

		1200: score.ErrIncompleteModel.Error(),
		1201: score.ErrDegenerateModel.Error(),
		1202: score.ErrInvalidEvidence.Error(),
	}

	errorInternalServer = errorJSON(999)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorPatientNotFound = errorJSON(1100)

	errorIncompleteModel = errorJSON(1200)
	errorDegenerateModel = errorJSON(1201)
	errorInvalidEvidence = errorJSON(1202)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

package errors

var InvalidRequestError = Error{
	Message: "Invalid request",
	Error:   400,
}

var ScriptNotFoundError = Error{
	Message: "Script not found",
	Error:   404,
}

var LineNotFoundError = Error{
	Message: "Line not found",
	Error:   404,
}

var SnapshotNotFoundError = Error{
	Message: "Snapshot not found",
	Error:   404,
}

var EmptyHistoryError = Error{
	Message: "No snapshots remain",
	Error:   409,
}

var InvalidDualTargetError = Error{
	Message: "No eligible dialogue block to pair",
	Error:   422,
}

var InternalServerError = Error{
	Message: "Internal server error",
	Error:   500,
}

var GenerationError = Error{
	Message: "Text generation failed",
	Error:   502,
}

func NewInvalidParamError(paramName string) Error {
	return Error{
		Message: "Invalid parameter: " + paramName,
		Error:   400,
	}
}

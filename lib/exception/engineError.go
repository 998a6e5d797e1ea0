package exception

type EmptyHistoryError struct {
	*AppError
	ScriptId string
}

// NewEmptyHistoryError reports that a history operation would leave a
// script with no current snapshot. Callers recover by creating an initial
// snapshot.
func NewEmptyHistoryError(scriptId string) *EmptyHistoryError {
	return &EmptyHistoryError{
		AppError: &AppError{
			Code:    "EMPTY_HISTORY",
			Message: "no snapshots remain for script '" + scriptId + "'",
		},
		ScriptId: scriptId,
	}
}

type InvalidDualTargetError struct {
	*AppError
	LineId string
}

// NewInvalidDualTargetError reports that dual-dialogue linking found no
// eligible partner block for the target line.
func NewInvalidDualTargetError(lineId string) *InvalidDualTargetError {
	return &InvalidDualTargetError{
		AppError: &AppError{
			Code:    "INVALID_DUAL_TARGET",
			Message: "no eligible dialogue block to pair with line '" + lineId + "'",
		},
		LineId: lineId,
	}
}

package exception

import "fmt"

type ScriptNotFoundError struct {
	*AppError
	ScriptId string
}

func NewScriptNotFoundError(scriptId string) *ScriptNotFoundError {
	return &ScriptNotFoundError{
		AppError: &AppError{
			Code:    "SCRIPT_NOT_FOUND",
			Message: fmt.Sprintf("script with id '%s' does not exist", scriptId),
		},
		ScriptId: scriptId,
	}
}

type SnapshotNotFoundError struct {
	*AppError
	SnapshotId string
}

func NewSnapshotNotFoundError(snapshotId string) *SnapshotNotFoundError {
	return &SnapshotNotFoundError{
		AppError: &AppError{
			Code:    "SNAPSHOT_NOT_FOUND",
			Message: fmt.Sprintf("snapshot with id '%s' does not exist", snapshotId),
		},
		SnapshotId: snapshotId,
	}
}

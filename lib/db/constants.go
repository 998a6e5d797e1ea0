package db

const ScriptDoesNotExistError = "script not found"
const SnapshotDoesNotExistError = "snapshot not found"

package audit

// WarningCode identifies a non-fatal anomaly attached to an issue event.
type WarningCode int

const (
	// WarnNoDateMetadata marks a media file that carried no usable date.
	WarnNoDateMetadata WarningCode = 10
	// WarnUnsupportedFile marks a file that is neither image nor video.
	WarnUnsupportedFile WarningCode = 20
	// WarnFilenameDate is reserved for moves resolved from filename
	// evidence. Resort moves record WarnNoDateMetadata instead, so this
	// code never appears in the issues table.
	WarnFilenameDate WarningCode = 30
)

// ErrorCode identifies a failure class attached to an issue event.
type ErrorCode int

const (
	// CodeUnprocessableFile marks a file that failed processing outright.
	CodeUnprocessableFile ErrorCode = 100
	// CodeMissingDate marks absent date evidence escalated to an error.
	CodeMissingDate ErrorCode = 200
	// CodeMoveError marks a failed filesystem move.
	CodeMoveError ErrorCode = 300
	// CodeDatabaseError marks a failed audit write.
	CodeDatabaseError ErrorCode = 400
)

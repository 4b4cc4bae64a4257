package models

// TransferErrorCode identifies which business rule rejected a transfer.
type TransferErrorCode string

const (
	TransferErrBadToken     TransferErrorCode = "bad_token"
	TransferErrDuplicate    TransferErrorCode = "duplicate"
	TransferErrAmount       TransferErrorCode = "amount"
	TransferErrAuth         TransferErrorCode = "auth"
	TransferErrNotFound     TransferErrorCode = "not_found"
	TransferErrSameAccount  TransferErrorCode = "same_account"
	TransferErrInsufficient TransferErrorCode = "insufficient"
)

// TransferError is the typed rejection of a transfer request. The Message
// is ready for direct display; callers key UI treatment off Code only.
// Match with errors.As.
type TransferError struct {
	Code    TransferErrorCode
	Message string
}

func (e *TransferError) Error() string {
	return e.Message
}

// NewTransferError builds a TransferError with the given code and message.
func NewTransferError(code TransferErrorCode, message string) *TransferError {
	return &TransferError{Code: code, Message: message}
}

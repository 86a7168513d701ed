package serializer

import "github.com/gin-gonic/gin"

// AppError application error carrying a business code, implements error
type AppError struct {
	Code     int
	Msg      string
	RawError error
}

// NewError builds a new AppError
func NewError(code int, msg string, err error) AppError {
	return AppError{
		Code:     code,
		Msg:      msg,
		RawError: err,
	}
}

// WithError returns a copy of the AppError carrying the raw error
func (err AppError) WithError(raw error) AppError {
	err.RawError = raw
	return err
}

// Error returns the business-facing message
func (err AppError) Error() string {
	return err.Msg
}

// Unwrap exposes the raw error for errors.Is/As
func (err AppError) Unwrap() error {
	return err.RawError
}

// Three-digit codes reuse their HTTP meaning; five-digit codes are
// application defined, 4xxxx for client-side faults and 5xxxx for
// server-side faults.
const (
	// CodeNotFullySuccess partial success on a bulk operation
	CodeNotFullySuccess = 203
	// CodeCheckLogin login required
	CodeCheckLogin = 401
	// CodeNoPermissionErr permission denied
	CodeNoPermissionErr = 403
	// CodeNotFound object not found or not owned by the caller
	CodeNotFound = 404
	// CodeParamErr malformed request parameters
	CodeParamErr = 40001
	// CodeObjectExist an object with the same name already exists
	CodeObjectExist = 40004
	// CodeSignExpired signature expired
	CodeSignExpired = 40005
	// CodeParentNotExist destination folder does not exist
	CodeParentNotExist = 40008
	// CodeIllegalObjectName object name rejected
	CodeIllegalObjectName = 40011
	// CodeCyclicMove destination equals the source or is inside it
	CodeCyclicMove = 40012
	// CodeUnsupportedOperation operation not supported for this object kind
	CodeUnsupportedOperation = 40013
	// CodeDBError database operation failed
	CodeDBError = 50001
	// CodeTransactionError transactional update failed and was rolled back
	CodeTransactionError = 50002
	// CodeInternalSetting internal setting missing or malformed
	CodeInternalSetting = 50005
	// CodeCacheOperation cache operation failed
	CodeCacheOperation = 50006
	// CodeExternalStore object-storage provider call failed
	CodeExternalStore = 50008
	// CodeNotSet fallback code resolved from the carried error
	CodeNotSet = -1
)

// DBErr database error response
func DBErr(msg string, err error) Response {
	if msg == "" {
		msg = "Database operation failed"
	}
	return Err(CodeDBError, msg, err)
}

// ParamErr parameter error response
func ParamErr(msg string, err error) Response {
	if msg == "" {
		msg = "Invalid parameters"
	}
	return Err(CodeParamErr, msg, err)
}

// Err builds an error response, preferring details carried by an AppError
func Err(errCode int, msg string, err error) Response {
	if appError, ok := err.(AppError); ok {
		errCode = appError.Code
		err = appError.RawError
		msg = appError.Msg
	}

	res := Response{
		Code: errCode,
		Msg:  msg,
	}
	// hide raw errors in production
	if err != nil && gin.Mode() != gin.ReleaseMode {
		res.Error = err.Error()
	}
	return res
}

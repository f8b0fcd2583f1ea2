package exceptions

import (
	"fmt"
	"healthtrack-service/internal/pkg/constvars"
	"runtime"
)

type CustomError struct {
	StatusCode    int         `json:"status_code"`
	Success       bool        `json:"success"`
	ClientMessage string      `json:"message"`
	Code          string      `json:"code,omitempty"`
	Data          interface{} `json:"data,omitempty"`
	DevMessage    string      `json:"dev_message,omitempty"`
	Locations     []Location  `json:"locations,omitempty"`
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	if len(e.Locations) == 0 {
		return e.DevMessage
	}
	location := e.Locations[0]
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, location.File, location.Line, location.FunctionName)
}

// WithData attaches a payload that is returned to the client alongside the error.
func (e *CustomError) WithData(data interface{}) *CustomError {
	e.Data = data
	return e
}

func BuildNewCustomError(err error, statusCode int, code, clientMessage, devMessage string) *CustomError {
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		Code:          code,
		DevMessage:    devMessage,
		Locations:     []Location{getLocation(3)},
	}
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ErrFileLocationUnknown,
			Line:         0,
			FunctionName: constvars.ErrFunctionNameUnknown,
		}
	}
	return Location{
		File:         file,
		Line:         line,
		FunctionName: runtime.FuncForPC(pc).Name(),
	}
}

// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	bgerrors "github.com/technigo/boardgames-api/pkg/errors"
	"github.com/technigo/boardgames-api/pkg/serializer"
)

// ErrorResponse is the JSON body of transport-level errors.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// WriteError writes a structured error response.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code bgerrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID := RequestIDFromContext(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	serializer.RespondJSON(w, statusCode, ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	})
}

// WriteErrorFromErr maps err onto a response. A StructuredError supplies the
// status, code, message and context; any other error becomes a 500 with
// fallbackMessage.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error,
	fallbackMessage string, extraDetails map[string]any) {

	var se *bgerrors.StructuredError
	if errors.As(err, &se) {
		details := mergeDetails(se.Context, extraDetails)
		if se.Cause != nil {
			if details == nil {
				details = make(map[string]any, 1)
			}
			details["error"] = se.Cause.Error()
		}
		WriteError(w, r, HTTPStatusFromCode(se.Code), se.Code, se.Message,
			retryableFromCode(se.Code), details)
		return
	}

	details := mergeDetails(extraDetails, nil)
	if err != nil {
		if details == nil {
			details = make(map[string]any, 1)
		}
		details["error"] = err.Error()
	}
	WriteError(w, r, http.StatusInternalServerError, bgerrors.ErrCodeInternal,
		fallbackMessage, true, details)
}

// HTTPStatusFromCode maps an error code to an HTTP status.
func HTTPStatusFromCode(code bgerrors.ErrorCode) int {
	switch code {
	case bgerrors.ErrCodeInvalidRequest, bgerrors.ErrCodeInvalidJSON:
		return http.StatusBadRequest
	case bgerrors.ErrCodeNotFound:
		return http.StatusNotFound
	case bgerrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case bgerrors.ErrCodeRequestTooLarge:
		return http.StatusRequestEntityTooLarge
	case bgerrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func retryableFromCode(code bgerrors.ErrorCode) bool {
	switch code {
	case bgerrors.ErrCodeUnavailable, bgerrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails returns a new map with b's entries overriding a's, or nil
// when both are empty.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

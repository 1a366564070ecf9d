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

import "context"

type contextKey string

const (
	contextKeyRequestID contextKey = "requestID"
	contextKeyBody      contextKey = "body"
)

// RequestIDFromContext returns the request ID assigned by the server.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKeyRequestID).(string)
	return id
}

// BodyFromContext returns the decoded JSON request body, if the request
// carried one.
func BodyFromContext(ctx context.Context) (any, bool) {
	v := ctx.Value(contextKeyBody)
	if v == nil {
		return nil, false
	}
	return v, true
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so the admin API adapter can use the full
// resty API.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent resty client that sends and accepts
// JSON and gives up on a request after timeout. A zero timeout disables the
// limit.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}

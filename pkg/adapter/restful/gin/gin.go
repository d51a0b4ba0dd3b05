// Copyright (c) 2024 The parkapi Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package gin

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/opencarpark/parkapi/pkg/core/log"
)

type HandlerFunc = gin.HandlerFunc
type Engine = gin.Engine
type RouterGroup = gin.RouterGroup

func New(middlewares ...HandlerFunc) *Engine {
	e := gin.New()
	e.Use(middlewares...)
	return e
}

// Logger returns a request logging middleware emitting one structured
// log line per handled request through the core log package.
func Logger() HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info(
			context.Background(), "request handled",
			log.Str("method", c.Request.Method),
			log.Str("path", c.Request.URL.Path),
			log.Int64("status", int64(c.Writer.Status())),
			log.Str("elapsed", time.Since(start).String()),
			log.Str("client_ip", c.ClientIP()),
		)
	}
}

func Recovery() HandlerFunc {
	return gin.Recovery()
}

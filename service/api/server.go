/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hyperledger-labs/fabric-cartrade/model"
	"github.com/hyperledger-labs/fabric-cartrade/model/constants"
	"github.com/hyperledger-labs/fabric-cartrade/service/invoke"
	"github.com/hyperledger-labs/fabric-cartrade/service/logging"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
)

const (
	readTimeout  = 15 * time.Second
	writeTimeout = 60 * time.Second
	idleTimeout  = 60 * time.Second
)

// Dispatcher executes the operations and queries received over HTTP.
type Dispatcher interface {
	Invoke(ctx context.Context, identity string, function string, args []string) (*invoke.Result, error)
	Query(ctx context.Context, identity string, query string, args []string) (*invoke.Result, error)
}

type Server struct {
	logger     logging.Logger
	dispatcher Dispatcher
	config     model.ServerConfig
	router     http.Handler
}

func NewServer(dispatcher Dispatcher, config model.ServerConfig, logger logging.Logger) *Server {
	if !logger.IsEnabledFor(zapcore.DebugLevel) {
		gin.SetMode(gin.ReleaseMode)
	}
	s := &Server{
		logger:     logger,
		dispatcher: dispatcher,
		config:     config,
	}
	s.router = s.newRouter()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Serve listens on the configured endpoint until ctx is done, then shuts the
// server down within the configured shutdown timeout.
func (s *Server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.config.Endpoint,
		Handler:      s.router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Infof("Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrapf(err, "failed to serve on %s", srv.Addr)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		timeout := s.config.ShutdownTimeout
		if timeout <= 0 {
			timeout = constants.DefaultShutdownTimeout
		}
		s.logger.Infof("Shutting down, timeout %s", timeout)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "failed to shut down")
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	s.logger.Infof("Server stopped")
	return nil
}

func (s *Server) newRouter() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), s.accessLog)

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	v1.POST("/transactions", s.handleTransaction)
	v1.GET("/queries/:query", s.handleQuery)

	return r
}

func (s *Server) accessLog(c *gin.Context) {
	start := time.Now()
	c.Next()
	s.logger.Debugf("%s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
}

type transactionResponse struct {
	Operation string `json:"operation"`
	Function  string `json:"function"`
	Payload   any    `json:"payload"`
}

type queryResponse struct {
	Query    string `json:"query"`
	Function string `json:"function"`
	Payload  any    `json:"payload"`
}

type errorResponse struct {
	Error     string `json:"error"`
	Kind      string `json:"kind"`
	Retryable bool   `json:"retryable"`
}

func (s *Server) handleTransaction(c *gin.Context) {
	var request model.Request
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{
			Error: errors.Wrap(err, "invalid request body").Error(),
			Kind:  invoke.InvalidArguments.String(),
		})
		return
	}

	res, err := s.dispatcher.Invoke(c.Request.Context(), request.Identity, request.Function, request.Args)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, transactionResponse{
		Operation: res.Name,
		Function:  res.Function,
		Payload:   payload(res.Payload),
	})
}

func (s *Server) handleQuery(c *gin.Context) {
	res, err := s.dispatcher.Query(c.Request.Context(), c.Query("identity"), c.Param("query"), c.QueryArray("arg"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, queryResponse{
		Query:    res.Name,
		Function: res.Function,
		Payload:  payload(res.Payload),
	})
}

func writeError(c *gin.Context, err error) {
	kind := invoke.KindOf(err)
	c.JSON(statusOf(kind), errorResponse{
		Error:     err.Error(),
		Kind:      kind.String(),
		Retryable: kind.Retryable(),
	})
}

func statusOf(kind invoke.Kind) int {
	switch kind {
	case invoke.IdentityNotFound:
		return http.StatusNotFound
	case invoke.UnsupportedOperation, invoke.InvalidArguments:
		return http.StatusBadRequest
	case invoke.ConnectionFailed, invoke.ContractResolutionFailed:
		return http.StatusServiceUnavailable
	case invoke.TransactionRejected:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// payload embeds JSON chaincode responses as they are, anything else as a string.
func payload(p []byte) any {
	if len(p) == 0 {
		return nil
	}
	if json.Valid(p) {
		return json.RawMessage(p)
	}
	return string(p)
}

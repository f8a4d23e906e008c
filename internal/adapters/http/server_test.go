package http

import (
	"context"
	"io"
	"net"
	"net/http"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"itemservice/internal/config"
	"itemservice/internal/platform/logger"
)

type ServerTestSuite struct {
	suite.Suite
	logger logger.Logger
}

func (s *ServerTestSuite) SetupTest() {
	s.logger = logger.NewNop()
}

func (s *ServerTestSuite) serverConfig(port int) *config.HttpConfig {
	return &config.HttpConfig{
		Server: config.HttpServerConfig{
			Host:              "127.0.0.1",
			Port:              port,
			ReadTimeout:       5,
			ReadHeaderTimeout: 2,
			WriteTimeout:      5,
			IdleTimeout:       10,
			ShutdownTimeout:   3,
		},
	}
}

func (s *ServerTestSuite) TestNewServer() {
	server := NewServer(s.serverConfig(9000), s.logger, http.NewServeMux())

	s.Equal("127.0.0.1:9000", server.Addr())
	s.Equal(5*time.Second, server.server.ReadTimeout)
	s.Equal(2*time.Second, server.server.ReadHeaderTimeout)
	s.Equal(5*time.Second, server.server.WriteTimeout)
	s.Equal(10*time.Second, server.server.IdleTimeout)
	s.Equal(3*time.Second, server.shutdownTimeout)
}

func (s *ServerTestSuite) TestNewServer_DefaultShutdownTimeout() {
	cfg := s.serverConfig(9000)
	cfg.Server.ShutdownTimeout = 0

	server := NewServer(cfg, s.logger, http.NewServeMux())

	s.Equal(defaultShutdownTimeout, server.shutdownTimeout)
}

func (s *ServerTestSuite) TestServer_StartServeStop() {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"valid":true}`))
	})
	server := NewServer(s.serverConfig(0), s.logger, handler)

	s.Require().NoError(server.Start(context.Background()))

	_, port, err := net.SplitHostPort(server.Addr())
	s.Require().NoError(err)
	s.NotEqual("0", port)

	resp, err := http.Get("http://" + server.Addr() + "/api/items/validate")
	s.Require().NoError(err)
	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.Require().NoError(resp.Body.Close())

	s.Equal(http.StatusOK, resp.StatusCode)
	s.JSONEq(`{"valid":true}`, string(body))

	s.NoError(server.Stop(context.Background()))

	_, err = http.Get("http://" + server.Addr() + "/")
	s.Error(err)
}

func (s *ServerTestSuite) TestServer_Start_PortInUse() {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)
	defer func() { _ = ln.Close() }()

	port := ln.Addr().(*net.TCPAddr).Port
	server := NewServer(s.serverConfig(port), s.logger, http.NewServeMux())

	err = server.Start(context.Background())

	s.ErrorContains(err, "listen on 127.0.0.1:"+strconv.Itoa(port))
}

func (s *ServerTestSuite) TestServer_Start_InvalidPort() {
	server := NewServer(s.serverConfig(99999), s.logger, http.NewServeMux())

	s.Error(server.Start(context.Background()))
}

func (s *ServerTestSuite) TestServer_Start_CancelledContext() {
	server := NewServer(s.serverConfig(0), s.logger, http.NewServeMux())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s.NoError(server.Start(ctx))
}

func (s *ServerTestSuite) TestServer_Stop_NotStarted() {
	server := NewServer(s.serverConfig(0), s.logger, http.NewServeMux())

	s.NoError(server.Stop(context.Background()))
}

func (s *ServerTestSuite) TestServer_Stop_WaitsForInFlightRequests() {
	started := make(chan struct{})
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusNoContent)
	})
	server := NewServer(s.serverConfig(0), s.logger, handler)
	s.Require().NoError(server.Start(context.Background()))

	var wg sync.WaitGroup
	var status int
	wg.Add(1)
	go func() {
		defer wg.Done()
		resp, err := http.Get("http://" + server.Addr() + "/")
		if err == nil {
			status = resp.StatusCode
			_ = resp.Body.Close()
		}
	}()

	<-started
	s.NoError(server.Stop(context.Background()))
	wg.Wait()

	s.Equal(http.StatusNoContent, status)
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

package config

import (
	"context"
	"fmt"
	"net"
	"time"

	"surveyapi/pkg/logger"

	sqle "github.com/dolthub/go-mysql-server"
	"github.com/dolthub/go-mysql-server/memory"
	"github.com/dolthub/go-mysql-server/server"
	"github.com/dolthub/go-mysql-server/sql"
)

// EmbeddedServer is an in-process, in-memory MySQL server used by DB_DRIVER=memory.
// Data does not survive a restart.
type EmbeddedServer struct {
	server *server.Server
	port   int
	dbName string
}

// DSN returns the go-sql-driver DSN for connecting to the embedded server.
func (e *EmbeddedServer) DSN() string {
	return fmt.Sprintf("root@tcp(localhost:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local", e.port, e.dbName)
}

// Close shuts the server down.
func (e *EmbeddedServer) Close() error {
	if err := e.server.Close(); err != nil {
		return fmt.Errorf("failed to close embedded server: %w", err)
	}
	logger.Infof("Closed embedded MySQL server on port %d", e.port)
	return nil
}

// StartEmbeddedServer starts an in-memory MySQL server with one empty database
// and waits until it accepts connections.
func StartEmbeddedServer(ctx context.Context, dbName string) (*EmbeddedServer, error) {
	port, err := getFreePort()
	if err != nil {
		return nil, fmt.Errorf("failed to get free port: %w", err)
	}

	db := memory.NewDatabase(dbName)
	provider := memory.NewDBProvider(db)
	engine := sqle.NewDefault(provider)

	cfg := server.Config{
		Protocol: "tcp",
		Address:  fmt.Sprintf("localhost:%d", port),
	}

	s, err := server.NewServer(cfg, engine, sql.NewContext, memory.NewSessionBuilder(provider), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create server: %w", err)
	}

	go func() {
		if err := s.Start(); err != nil {
			logger.Errorf("Embedded MySQL server error: %v", err)
		}
	}()

	readyCtx, readyCancel := context.WithTimeout(ctx, 5*time.Second)
	defer readyCancel()

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-readyCtx.Done():
			s.Close()
			return nil, fmt.Errorf("embedded server failed to start within timeout: %w", readyCtx.Err())
		case <-ticker.C:
			conn, err := net.DialTimeout("tcp", cfg.Address, 100*time.Millisecond)
			if err == nil {
				conn.Close()
				logger.Infof("Started embedded MySQL server on port %d (database %s)", port, dbName)
				return &EmbeddedServer{
					server: s,
					port:   port,
					dbName: dbName,
				}, nil
			}
		}
	}
}

func getFreePort() (int, error) {
	addr, err := net.ResolveTCPAddr("tcp", "localhost:0")
	if err != nil {
		return 0, err
	}

	l, err := net.ListenTCP("tcp", addr)
	if err != nil {
		return 0, err
	}
	defer l.Close()

	return l.Addr().(*net.TCPAddr).Port, nil
}

package mcp

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"dyno/internal/calc"
	"dyno/internal/catalog"
	"dyno/internal/logging"
)

// Server is the MCP stdio tool server. It reads newline-delimited JSON-RPC
// messages from stdin and answers on stdout.
type Server struct {
	stdin   io.Reader
	stdout  io.Writer
	scanner *bufio.Scanner
	logger  *logging.Logger
	version string

	// sessionID correlates all log lines of one server lifetime.
	sessionID string

	store      *catalog.Store
	calculator *calc.Calculator
	tools      map[string]ToolHandler
}

// NewServer creates an MCP server over the given catalog.
func NewServer(version string, store *catalog.Store, logger *logging.Logger) *Server {
	server := &Server{
		stdin:      os.Stdin,
		stdout:     os.Stdout,
		logger:     logger,
		version:    version,
		sessionID:  uuid.New().String(),
		store:      store,
		calculator: calc.New(store),
		tools:      make(map[string]ToolHandler),
	}

	server.RegisterTools()

	return server
}

// Start starts the MCP server and begins processing messages
func (s *Server) Start() error {
	s.logger.Info("MCP server starting", map[string]interface{}{
		"version": s.version,
		"session": s.sessionID,
	})

	// Main message loop
	for {
		msg, err := s.readMessage()
		if err != nil {
			if err == io.EOF {
				s.logger.Info("MCP server shutting down (EOF)", nil)
				return nil
			}
			s.logger.Error("Error reading message", map[string]interface{}{
				"error": err.Error(),
			})

			// Try to send error response if we can extract an ID
			if msg != nil && msg.Id != nil {
				_ = s.writeError(msg.Id, ParseError, fmt.Sprintf("Failed to parse message: %v", err))
			}
			continue
		}

		// Process the message
		response := s.handleMessage(msg)

		// Notifications don't generate responses
		if response != nil {
			if err := s.writeMessage(response); err != nil {
				s.logger.Error("Error writing response", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}
	}
}

// SetStdin sets the input stream (for testing)
func (s *Server) SetStdin(r io.Reader) {
	s.stdin = r
	s.scanner = nil // Reset scanner so it will be recreated with new reader
}

// SetStdout sets the output stream (for testing)
func (s *Server) SetStdout(w io.Writer) {
	s.stdout = w
}

// SessionID returns the identifier logged with every message this server
// lifetime.
func (s *Server) SessionID() string {
	return s.sessionID
}

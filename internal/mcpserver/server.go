// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes Mannaz tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/mannaz/internal/apperr"
	"github.com/starford/mannaz/internal/contactbook"
)

// Server wraps the MCP server with Mannaz tools.
type Server struct {
	mcp *server.MCPServer
	svc *contactbook.Service
}

// New creates a new MCP server with all Mannaz tools registered.
func New(svc *contactbook.Service) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"Mannaz",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	s.mcp.AddTool(mcp.NewTool("list_contacts",
		mcp.WithDescription("List all contacts in the address book in stored order."),
	), s.listContacts)

	s.mcp.AddTool(mcp.NewTool("get_contact",
		mcp.WithDescription("Get a single contact by its id."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Contact id")),
	), s.getContact)

	s.mcp.AddTool(mcp.NewTool("add_contact",
		mcp.WithDescription("Add a new contact. The id is generated and returned in the result."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Contact name")),
		mcp.WithString("email", mcp.Required(), mcp.Description("Contact email address")),
		mcp.WithString("phone", mcp.Required(), mcp.Description("Contact phone number")),
	), s.addContact)

	s.mcp.AddTool(mcp.NewTool("remove_contact",
		mcp.WithDescription("Remove a contact by id. Returns the removed record."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Contact id")),
	), s.removeContact)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}


func (s *Server) listContacts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	contacts, err := s.svc.List(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(contacts, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getContact(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	contact, err := s.svc.Get(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("not found: %s", id)), nil
		}
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(contact, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) addContact(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	email, err := req.RequireString("email")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	phone, err := req.RequireString("phone")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	contact, err := s.svc.Add(ctx, name, email, phone)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(contact, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) removeContact(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	removed, err := s.svc.Remove(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("not found: %s", id)), nil
		}
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(removed, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

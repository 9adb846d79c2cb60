// Package mcp exposes the tutoring engine as an MCP stdio server so agent
// hosts can ask questions and inspect session state.
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tutorloop/tutorloop/internal/corpus"
	"github.com/tutorloop/tutorloop/internal/tutor"
)

// Server wraps the engine behind MCP tools.
type Server struct {
	engine   *tutor.Engine
	maxCalls int
}

// NewServer creates an MCP server around engine. maxCalls is the per-topic
// AI quota, used to render budget tags.
func NewServer(engine *tutor.Engine, maxCalls int) *Server {
	return &Server{engine: engine, maxCalls: maxCalls}
}

// Serve registers the tools and blocks serving MCP over stdio.
func (s *Server) Serve(version string) error {
	srv := server.NewMCPServer("tutorloop", version)

	srv.AddTool(mcp.NewTool("tutor_ask",
		mcp.WithDescription("Ask the tutor a question. Answers come from the knowledge base when possible (free) and fall back to a quota-limited AI call."),
		mcp.WithString("module_id", mcp.Required(), mcp.Description("Session identifier; one conversation per module_id")),
		mcp.WithString("question", mcp.Required(), mcp.Description("The learner's question")),
	), s.handleAsk)

	srv.AddTool(mcp.NewTool("tutor_status",
		mcp.WithDescription("Show the session state for a module: phase, topic, question and AI-call budgets."),
		mcp.WithString("module_id", mcp.Required()),
	), s.handleStatus)

	srv.AddTool(mcp.NewTool("tutor_suggest",
		mcp.WithDescription("Suggest study questions for a topic, optionally filtered by difficulty."),
		mcp.WithString("topic", mcp.Required()),
		mcp.WithString("difficulty", mcp.Description("beginner, intermediate, or advanced")),
	), s.handleSuggest)

	return server.ServeStdio(srv)
}

func (s *Server) handleAsk(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	moduleID, err := req.RequireString("module_id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: module_id"), nil
	}
	question, err := req.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: question"), nil
	}

	ans := s.engine.Ask(ctx, moduleID, question)
	return mcp.NewToolResultText(ans.Tagged(s.maxCalls)), nil
}

func (s *Server) handleStatus(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	moduleID, err := req.RequireString("module_id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: module_id"), nil
	}

	sctx, ok := s.engine.Sessions().Get(moduleID)
	if !ok {
		return mcp.NewToolResultText(fmt.Sprintf("No session yet for module %q.", moduleID)), nil
	}

	topics := s.engine.Corpus().Topics()
	topic := ""
	if sctx.TopicIndex >= 0 && sctx.TopicIndex < len(topics) {
		topic = topics[sctx.TopicIndex]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Module:    %s\n", sctx.ModuleID)
	fmt.Fprintf(&sb, "Topic:     %s (%d of %d)\n", topic, sctx.TopicIndex+1, len(topics))
	fmt.Fprintf(&sb, "Phase:     %s\n", sctx.CurrentPhase)
	fmt.Fprintf(&sb, "Questions: %d/%d asked\n", sctx.QuestionsAsked, sctx.MaxQuestions)
	fmt.Fprintf(&sb, "AI calls:  %d/%d used\n", sctx.AICallsUsed, sctx.MaxAICalls)
	fmt.Fprintf(&sb, "Turns:     %d\n", len(sctx.History))
	if sctx.TopicCompleted {
		sb.WriteString("Topic complete; ready to advance.\n")
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func (s *Server) handleSuggest(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic, err := req.RequireString("topic")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: topic"), nil
	}
	difficulty := corpus.Difficulty(req.GetString("difficulty", ""))
	if difficulty != "" && !corpus.ValidDifficulty(difficulty) {
		return mcp.NewToolResultError(fmt.Sprintf("invalid difficulty %q (valid: beginner, intermediate, advanced)", difficulty)), nil
	}

	qs := s.engine.Suggest(topic, difficulty, "")
	if len(qs) == 0 {
		return mcp.NewToolResultText("No suggestions available."), nil
	}

	var sb strings.Builder
	for _, q := range qs {
		fmt.Fprintf(&sb, "- %s\n", q)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

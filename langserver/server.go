// Package langserver implements a minimal Language Server Protocol
// server that validates grammar text files (.cfg) on open/change/save
// and publishes InvalidGrammar diagnostics for them.
package langserver

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/earley-go/cfparse/grammar"
)

const serverName = "cfparse"

// Server is a stdio LSP server that diagnoses grammar files as they
// are opened, edited, and saved.
type Server struct {
	handler protocol.Handler
	server  *server.Server
	docs    map[string]string
	version string
}

// New returns a Server reporting version in its LSP ServerInfo.
func New(version string) *Server {
	ls := &Server{
		docs:    make(map[string]string),
		version: version,
	}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
		TextDocumentDidSave:   ls.textDocumentDidSave,
	}

	ls.server = server.NewServer(&ls.handler, serverName, false)
	return ls
}

// RunStdio serves LSP requests over stdin/stdout until the client
// disconnects or sends Shutdown.
func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	ls.docs[uri] = params.TextDocument.Text
	ls.validate(ctx, uri)
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		ls.docs[uri] = whole.Text
		ls.validate(ctx, uri)
	}
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	delete(ls.docs, params.TextDocument.URI)
	return nil
}

func (ls *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	uri := params.TextDocument.URI
	if params.Text != nil {
		ls.docs[uri] = *params.Text
	}
	ls.validate(ctx, uri)
	return nil
}

// validate parses the document's current text as grammar rules (one
// non-empty line per rule) and publishes either an empty diagnostics
// list or a single diagnostic describing the *grammar.InvalidGrammarError.
func (ls *Server) validate(ctx *glsp.Context, uri string) {
	rules := splitRules(ls.docs[uri])

	diagnostics := []protocol.Diagnostic{}
	if _, err := grammar.Parse(rules); err != nil {
		diagnostics = append(diagnostics, toDiagnostic(err))
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func toDiagnostic(err error) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	line := protocol.UInteger(0)
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: 0},
			End:   protocol.Position{Line: line, Character: 0},
		},
		Severity: &severity,
		Source:   strPtr(serverName),
		Message:  err.Error(),
	}
}

func splitRules(text string) []string {
	var rules []string
	start := 0
	for i := 0; i <= len(text); i++ {
		if i == len(text) || text[i] == '\n' {
			line := text[start:i]
			start = i + 1
			if trimmed := trimRule(line); trimmed != "" {
				rules = append(rules, trimmed)
			}
		}
	}
	return rules
}

func trimRule(s string) string {
	start, end := 0, len(s)
	for start < end && isBlank(s[start]) {
		start++
	}
	for end > start && isBlank(s[end-1]) {
		end--
	}
	return s[start:end]
}

func isBlank(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r'
}

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}

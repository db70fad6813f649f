// Package lsp implements a diagnostics-only language server for .sz
// sources: on every open/change it parses, elaborates, and runs the
// termination checker over the file, then publishes the result as LSP
// diagnostics. Structured the way the teacher's KansoHandler is
// structured (internal/lsp/handler.go): a mutex-guarded per-path content
// map plus one method per glsp protocol hook.
package lsp

import (
	"fmt"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"sizecheck/internal/checker"
	"sizecheck/internal/elaborate"
	"sizecheck/internal/parser"
	"sizecheck/internal/reduce"
)

// Handler implements the glsp protocol.Handler callbacks this server
// supports. Unlike the teacher's handler, there is no completion or
// semantic-tokens support — per SPEC_FULL.md this server is diagnostics
// only.
type Handler struct {
	mu      sync.RWMutex
	content map[string]string
}

// NewHandler builds an empty Handler ready to be wired into a
// protocol.Handler and served.
func NewHandler() *Handler {
	return &Handler{content: make(map[string]string)}
}

func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
		},
	}, nil
}

func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (h *Handler) Shutdown(ctx *glsp.Context) error {
	return nil
}

func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	h.store(uri, params.TextDocument.Text)
	go h.checkAndPublish(ctx, uri, params.TextDocument.Text)
	return nil
}

func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	text, err := fullText(params.ContentChanges)
	if err != nil {
		return err
	}
	h.store(uri, text)
	go h.checkAndPublish(ctx, uri, text)
	return nil
}

func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	h.mu.Lock()
	delete(h.content, params.TextDocument.URI)
	h.mu.Unlock()
	return nil
}

func (h *Handler) store(uri, text string) {
	h.mu.Lock()
	h.content[uri] = text
	h.mu.Unlock()
}

// checkAndPublish runs the full parse/elaborate/check pipeline for one
// file without holding Handler's lock, so concurrent edits to other open
// files are never blocked on this one's analysis — the concurrent
// per-file checking SPEC_FULL.md calls for.
func (h *Handler) checkAndPublish(ctx *glsp.Context, uri protocol.DocumentUri, source string) {
	path, err := uriToPath(uri)
	if err != nil {
		return
	}

	var diagnostics []protocol.Diagnostic
	modules, err := parser.ParseSource(path, source)
	if err != nil {
		diagnostics = diagnosticsForError(err)
	} else {
		prog, err := elaborate.Elaborate(modules)
		if err != nil {
			diagnostics = diagnosticsForError(err)
		} else {
			prog.SetReducer(reduce.Normalize)
			for _, block := range prog.Blocks() {
				verdict, err := checker.TerminationCheck(block, prog)
				if err != nil {
					diagnostics = append(diagnostics, diagnosticsForError(err)...)
					continue
				}
				diagnostics = append(diagnostics, diagnosticsForVerdict(verdict)...)
			}
		}
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

// fullText extracts the whole-document text from a full-sync change
// notification (the only sync kind this server advertises).
func fullText(changes []interface{}) (string, error) {
	if len(changes) == 0 {
		return "", fmt.Errorf("lsp: no content changes in didChange notification")
	}
	last := changes[len(changes)-1]
	event, ok := last.(protocol.TextDocumentContentChangeEventWhole)
	if !ok {
		return "", fmt.Errorf("lsp: expected a full-document change event")
	}
	return event.Text, nil
}

func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}
	path := u.Path
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}
	return filepath.FromSlash(path), nil
}

func ptrBool(b bool) *bool { return &b }

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind { return &k }

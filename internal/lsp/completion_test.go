package lsp

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func completionAt(t *testing.T, ls *Server, uri string, line, character uint32) []protocol.CompletionItem {
	t.Helper()
	result, err := ls.textDocumentCompletion(nil, &protocol.CompletionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
			Position:     protocol.Position{Line: line, Character: character},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil {
		return nil
	}
	list, ok := result.(protocol.CompletionList)
	if !ok {
		t.Fatalf("result has type %T", result)
	}
	return list.Items
}

func labels(items []protocol.CompletionItem) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item.Label] = true
	}
	return set
}

func TestCompletionPropertyPrefix(t *testing.T) {
	ls := testServer()
	ls.docs.Open("file:///a.ics", "DTST\n", 1)

	// Cursor after the T; matching considers the text left of it.
	got := labels(completionAt(t, ls, "file:///a.ics", 0, 4))
	if !got["DTSTART"] || !got["DTSTAMP"] {
		t.Errorf("candidates %v missing DTSTART or DTSTAMP", got)
	}
	if got["SUMMARY"] {
		t.Errorf("candidates %v should not include SUMMARY", got)
	}
}

func TestCompletionMatchesSecondaryKeyword(t *testing.T) {
	ls := testServer()
	// "start date" is a DTSTART keyword; "star" matches it as a substring.
	ls.docs.Open("file:///a.ics", "start\n", 1)

	got := labels(completionAt(t, ls, "file:///a.ics", 0, 5))
	if !got["DTSTART"] {
		t.Errorf("candidates %v missing DTSTART", got)
	}
}

func TestCompletionParameterName(t *testing.T) {
	ls := testServer()
	ls.docs.Open("file:///a.ics", "DTSTART;TZ\n", 1)

	got := labels(completionAt(t, ls, "file:///a.ics", 0, 10))
	if !got["TZID"] {
		t.Errorf("candidates %v missing TZID", got)
	}
	if got["DTSTART"] {
		t.Errorf("candidates %v should not include properties", got)
	}
}

func TestCompletionEmptyNameListsEverything(t *testing.T) {
	ls := testServer()
	ls.docs.Open("file:///a.ics", "D\n", 1)

	// Cursor at column 1 looks left into "D" with an empty partial, so
	// every property matches.
	items := completionAt(t, ls, "file:///a.ics", 0, 1)
	got := labels(items)
	if len(got) == 0 || !got["SUMMARY"] {
		t.Errorf("candidates %v, want the full vocabulary", got)
	}
	if len(items) > completionLimit {
		t.Errorf("got %d items, limit is %d", len(items), completionLimit)
	}
}

func TestCompletionInValueYieldsNothing(t *testing.T) {
	ls := testServer()
	ls.docs.Open("file:///a.ics", "SUMMARY:Par\n", 1)

	if items := completionAt(t, ls, "file:///a.ics", 0, 11); items != nil {
		t.Errorf("expected no completion inside a value, got %v", items)
	}
}

func TestCompletionDisabled(t *testing.T) {
	ls := testServer()
	ls.completionEnabled = false
	ls.docs.Open("file:///a.ics", "DTST\n", 1)

	if items := completionAt(t, ls, "file:///a.ics", 0, 4); items != nil {
		t.Errorf("expected no completion when disabled, got %v", items)
	}
}

func TestCompletionResolveProperty(t *testing.T) {
	ls := testServer()

	item, err := ls.completionItemResolve(nil, &protocol.CompletionItem{
		Label: "DTSTART",
		Data:  completionKindProperty,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content, ok := item.Documentation.(protocol.MarkupContent)
	if !ok {
		t.Fatalf("documentation has type %T", item.Documentation)
	}
	if content.Kind != protocol.MarkupKindMarkdown {
		t.Errorf("markup kind = %q, want markdown", content.Kind)
	}
	if content.Value == "" {
		t.Error("documentation is empty")
	}
}

func TestCompletionResolveParameter(t *testing.T) {
	ls := testServer()

	item, err := ls.completionItemResolve(nil, &protocol.CompletionItem{
		Label: "TZID",
		Data:  completionKindParameter,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := item.Documentation.(protocol.MarkupContent); !ok {
		t.Fatalf("documentation has type %T", item.Documentation)
	}
}

func TestCompletionResolveUnknownData(t *testing.T) {
	ls := testServer()

	item, err := ls.completionItemResolve(nil, &protocol.CompletionItem{Label: "DTSTART"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Documentation != nil {
		t.Errorf("expected no documentation, got %v", item.Documentation)
	}
}

func TestCompletionAfterShutdown(t *testing.T) {
	ls := testServer()
	ls.stopping = true
	ls.docs.Open("file:///a.ics", "DTST\n", 1)

	_, err := ls.textDocumentCompletion(nil, &protocol.CompletionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: "file:///a.ics"},
		},
	})
	if err != errAfterShutdown {
		t.Errorf("err = %v, want errAfterShutdown", err)
	}
}

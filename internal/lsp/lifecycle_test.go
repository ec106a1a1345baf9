package lsp

import (
	"encoding/json"
	"testing"

	"icalls/internal/document"
)

func TestNegotiateEncoding(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want document.Encoding
	}{
		{
			"utf-8 offered",
			`{"capabilities":{"general":{"positionEncodings":["utf-8","utf-16"]}}}`,
			document.EncodingUTF8,
		},
		{
			"utf-16 only",
			`{"capabilities":{"general":{"positionEncodings":["utf-16"]}}}`,
			document.EncodingUTF16,
		},
		{
			"no encodings advertised",
			`{"capabilities":{}}`,
			document.EncodingUTF16,
		},
		{
			"unsupported encodings fall back",
			`{"capabilities":{"general":{"positionEncodings":["utf-32"]}}}`,
			document.EncodingUTF16,
		},
		{
			"malformed params",
			`{`,
			document.EncodingUTF16,
		},
	}

	for _, tt := range tests {
		if got := negotiateEncoding(json.RawMessage(tt.raw)); got != tt.want {
			t.Errorf("%s: encoding = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestDecodeInitializationOptions(t *testing.T) {
	opts := decodeInitializationOptions(map[string]any{
		"enable_completion": false,
	})
	if opts.EnableCompletion == nil || *opts.EnableCompletion {
		t.Errorf("EnableCompletion = %v, want false", opts.EnableCompletion)
	}
	if opts.EnableHover != nil {
		t.Errorf("EnableHover = %v, want unset", opts.EnableHover)
	}

	opts = decodeInitializationOptions(nil)
	if opts.EnableCompletion != nil || opts.EnableHover != nil {
		t.Errorf("nil options should decode to unset toggles, got %+v", opts)
	}
}

func TestExitBeforeShutdown(t *testing.T) {
	ls := testServer()
	if err := ls.exit(nil); err == nil {
		t.Error("exit before shutdown must fail")
	}
}

func TestShutdownThenExit(t *testing.T) {
	ls := testServer()
	if err := ls.shutdown(nil); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	if !ls.stopping {
		t.Error("shutdown should mark the server as stopping")
	}
	if err := ls.exit(nil); err != nil {
		t.Errorf("exit after shutdown: %v", err)
	}
}

func TestMarshalInitializeResult(t *testing.T) {
	result := initializeResult{
		Capabilities: serverCapabilities{
			PositionEncoding: document.EncodingUTF8.String(),
		},
	}
	encoded, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded struct {
		Capabilities struct {
			PositionEncoding string `json:"positionEncoding"`
		} `json:"capabilities"`
	}
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Capabilities.PositionEncoding != "utf-8" {
		t.Errorf("positionEncoding = %q, want utf-8", decoded.Capabilities.PositionEncoding)
	}
}

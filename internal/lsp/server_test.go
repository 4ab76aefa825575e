package lsp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"testing"
)

const testURI = "file:///tmp/test.em"

func frame(t *testing.T, id any, method string, params any) string {
	t.Helper()
	msg := map[string]any{"jsonrpc": "2.0", "method": method}
	if id != nil {
		msg["id"] = id
	}
	if params != nil {
		msg["params"] = params
	}
	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatal(err)
	}
	return fmt.Sprintf("Content-Length: %d\r\n\r\n%s", len(data), data)
}

// session runs the server over the given frames and returns every message
// it wrote.
func session(t *testing.T, frames ...string) []map[string]any {
	t.Helper()

	var out bytes.Buffer
	srv := NewServer(strings.NewReader(strings.Join(frames, "")), &out, nil, nil)
	if err := srv.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var msgs []map[string]any
	r := bufio.NewReader(&out)
	for {
		var n int
		line, err := r.ReadString('\n')
		if err == io.EOF {
			return msgs
		}
		if _, err := fmt.Sscanf(line, "Content-Length: %d", &n); err != nil {
			t.Fatalf("bad header %q", line)
		}
		if _, err := r.ReadString('\n'); err != nil {
			t.Fatal(err)
		}
		body := make([]byte, n)
		if _, err := io.ReadFull(r, body); err != nil {
			t.Fatal(err)
		}
		var msg map[string]any
		if err := json.Unmarshal(body, &msg); err != nil {
			t.Fatal(err)
		}
		msgs = append(msgs, msg)
	}
}

func open(t *testing.T, text string) string {
	return frame(t, nil, "textDocument/didOpen", map[string]any{
		"textDocument": map[string]any{"uri": testURI, "languageId": "ember", "version": 1, "text": text},
	})
}

func at(line, char int) map[string]any {
	return map[string]any{
		"textDocument": map[string]any{"uri": testURI},
		"position":     map[string]any{"line": line, "character": char},
	}
}

func TestInitialize(t *testing.T) {
	msgs := session(t, frame(t, 1, "initialize", map[string]any{}), frame(t, nil, "exit", nil))
	if len(msgs) != 1 {
		t.Fatalf("expected one response, got %v", msgs)
	}
	result := msgs[0]["result"].(map[string]any)
	info := result["serverInfo"].(map[string]any)
	if info["name"] != "ember-lsp" {
		t.Fatalf("unexpected server info %v", info)
	}
}

func TestPublishDiagnostics(t *testing.T) {
	msgs := session(t, open(t, "int32 x = 1;\nbool b = x;\n"))
	if len(msgs) != 1 || msgs[0]["method"] != "textDocument/publishDiagnostics" {
		t.Fatalf("expected a diagnostics notification, got %v", msgs)
	}

	params := msgs[0]["params"].(map[string]any)
	diags := params["diagnostics"].([]any)
	if len(diags) != 1 {
		t.Fatalf("expected one diagnostic, got %v", diags)
	}
	d := diags[0].(map[string]any)
	if d["code"] != "TypeDiffers" || d["message"] != "type differs: expected bool, found int32" {
		t.Fatalf("unexpected diagnostic %v", d)
	}
	start := d["range"].(map[string]any)["start"].(map[string]any)
	if start["line"] != float64(1) || start["character"] != float64(9) {
		t.Fatalf("unexpected range start %v", start)
	}
}

func TestHoverAndDefinition(t *testing.T) {
	src := "int32 add(int32 a, int32 b) {\n\treturn a + b;\n}\n"
	msgs := session(t,
		open(t, src),
		frame(t, 2, "textDocument/hover", at(1, 8)),
		frame(t, 3, "textDocument/definition", at(1, 8)),
		frame(t, 4, "textDocument/hover", at(0, 7)),
	)
	if len(msgs) != 4 {
		t.Fatalf("expected notification and three responses, got %v", msgs)
	}

	hover := msgs[1]["result"].(map[string]any)["contents"].(map[string]any)
	if !strings.Contains(hover["value"].(string), "int32 a") {
		t.Fatalf("unexpected hover %v", hover)
	}

	loc := msgs[2]["result"].(map[string]any)
	start := loc["range"].(map[string]any)["start"].(map[string]any)
	if start["line"] != float64(0) || start["character"] != float64(16) {
		t.Fatalf("expected the parameter declaration, got %v", start)
	}

	fn := msgs[3]["result"].(map[string]any)["contents"].(map[string]any)
	if !strings.Contains(fn["value"].(string), "int32 add(int32 a, int32 b)") {
		t.Fatalf("unexpected function hover %v", fn)
	}
}

func TestCompletion(t *testing.T) {
	src := "int32 g = 1;\nvoid f(int32 p) {\n\tint32 local = p;\n\t\n}\n"
	msgs := session(t, open(t, src), frame(t, 5, "textDocument/completion", at(3, 1)))

	items := msgs[1]["result"].(map[string]any)["items"].([]any)
	labels := make(map[string]bool)
	for _, it := range items {
		labels[it.(map[string]any)["label"].(string)] = true
	}
	for _, want := range []string{"g", "f", "p", "local", "return", "int32"} {
		if !labels[want] {
			t.Fatalf("expected %q in completions, got %v", want, labels)
		}
	}
}

func TestUnknownMethodAndShutdown(t *testing.T) {
	msgs := session(t,
		frame(t, 1, "workspace/symbol", map[string]any{}),
		frame(t, 2, "shutdown", nil),
		frame(t, 3, "textDocument/hover", at(0, 0)),
		frame(t, nil, "exit", nil),
	)
	if len(msgs) != 3 {
		t.Fatalf("expected three responses, got %v", msgs)
	}
	if code := msgs[0]["error"].(map[string]any)["code"]; code != float64(codeMethodNotFound) {
		t.Fatalf("expected method not found, got %v", code)
	}
	if code := msgs[2]["error"].(map[string]any)["code"]; code != float64(codeInvalidRequest) {
		t.Fatalf("expected requests after shutdown to fail, got %v", code)
	}
}

func TestOffsetConversions(t *testing.T) {
	content := "ab\ncde\n"
	if got := offsetToPosition(content, 4); got != (Position{Line: 1, Character: 1}) {
		t.Fatalf("unexpected position %v", got)
	}
	if got := positionToOffset(content, Position{Line: 1, Character: 1}); got != 4 {
		t.Fatalf("unexpected offset %d", got)
	}
	if got := uriToPath("file:///C:/src/a.em"); got != "C:/src/a.em" {
		t.Fatalf("unexpected path %q", got)
	}
}

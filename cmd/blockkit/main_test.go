package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `
text: Deploy finished
blocks:
  - type: header
    text: Deploy
  - type: divider
attachments:
  - kind: attachment
    color: success
    header: {text: Notes, link: "https://example.com/n"}
`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestRun_RenderJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "msg.yaml", sampleManifest)
	var out, errOut bytes.Buffer

	code := run(context.Background(), []string{"render", "-f", path}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())

	var got map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Equal(t, "Deploy finished", got["text"])
	require.Len(t, got["blocks"], 2)
	att := got["attachments"].([]any)[0].(map[string]any)
	require.Equal(t, "#28a745", att["color"])
	// mrkdwn links are written without HTML escaping
	require.Contains(t, out.String(), "*<https://example.com/n|Notes>*")
}

func TestRun_RenderYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "msg.yaml", sampleManifest)
	var out, errOut bytes.Buffer

	code := run(context.Background(), []string{"render", "-f", path, "-format", "yaml"}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	require.True(t, strings.HasPrefix(out.String(), "text: Deploy finished\n"), out.String())
}

func TestRun_RenderUsesConfigNextToManifest(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "msg.yaml", sampleManifest)
	writeFile(t, dir, "blockkit.yaml", "limits:\n  max_blocks: 1\n")
	var out, errOut bytes.Buffer

	code := run(context.Background(), []string{"render", "-f", path}, &out, &errOut)
	require.Equal(t, 1, code)
	require.Contains(t, errOut.String(), "/blocks\tlimit_exceeded")
}

func TestRun_ValidateCollectsIssues(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.yaml", `
blocks:
  - type: context
  - type: section
attachments:
  - kind: attachments
`)
	var out, errOut bytes.Buffer

	code := run(context.Background(), []string{"validate", "-f", path}, &out, &errOut)
	require.Equal(t, 1, code)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3, out.String())
	require.True(t, strings.HasPrefix(lines[0], "/blocks/0\tempty_collection"))
	require.True(t, strings.HasPrefix(lines[1], "/blocks/1\tempty_collection"))
	require.True(t, strings.HasPrefix(lines[2], "/attachments/0\tempty_collection"))
}

func TestRun_ValidateReportsManifestIssues(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.yaml", "blocks:\n  - type: table\n")
	var out, errOut bytes.Buffer

	code := run(context.Background(), []string{"validate", "-f", path}, &out, &errOut)
	require.Equal(t, 1, code)
	require.Contains(t, out.String(), "/blocks/0/type\tunknown_kind")
}

func TestRun_ValidateOK(t *testing.T) {
	path := writeFile(t, t.TempDir(), "msg.json", `{"text":"hi"}`)
	var out, errOut bytes.Buffer

	code := run(context.Background(), []string{"validate", "-f", path}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	require.Contains(t, out.String(), ": ok")
}

func TestRun_Schema(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run(context.Background(), []string{"schema", "-kind", "attachment_field"}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())

	var s map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &s))
	props := s["properties"].(map[string]any)
	fields := props["fields"].(map[string]any)
	require.EqualValues(t, 25, fields["maxItems"])

	code = run(context.Background(), []string{"schema", "-kind", "carousel"}, &out, &errOut)
	require.Equal(t, 2, code)
}

func TestRun_Usage(t *testing.T) {
	var out, errOut bytes.Buffer
	require.Equal(t, 2, run(context.Background(), nil, &out, &errOut))
	require.Equal(t, 2, run(context.Background(), []string{"render"}, &out, &errOut))
	require.Equal(t, 2, run(context.Background(), []string{"publish"}, &out, &errOut))
}

package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/teleivo/assertive/assert"
)

const sampleIR = `{"kind":0,"nodes":{"a":{"id":"a","label":"A"},"b":{"id":"b","label":"B"}},"nodeOrder":["a","b"],"edges":[{"from":"a","to":"b"}]}`

func TestRunLayoutDefaultsToJSONOnStdout(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code, err := run([]string{"diagramlayout"}, strings.NewReader(sampleIR), &stdout, &stderr)

	assert.NoErrorf(t, err, "run")
	assert.EqualValuesf(t, code, 0, "exit code")

	var l map[string]any
	if jsonErr := json.Unmarshal(stdout.Bytes(), &l); jsonErr != nil {
		t.Fatalf("stdout is not valid JSON: %v\n%s", jsonErr, stdout.String())
	}
	if _, ok := l["Nodes"]; !ok {
		t.Fatalf("expected a Nodes field in the computed layout, got: %s", stdout.String())
	}
}

func TestRunLayoutDumpIR(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code, err := run([]string{"diagramlayout", "-dump-ir"}, strings.NewReader(sampleIR), &stdout, &stderr)

	assert.NoErrorf(t, err, "run")
	assert.EqualValuesf(t, code, 0, "exit code")
	assert.Truef(t, strings.Contains(stdout.String(), `"Label": "A"`), "dumped IR should echo node labels")
}

func TestRunLayoutRejectsUnsupportedOutputFormat(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code, err := run([]string{"diagramlayout", "-e", "svg"}, strings.NewReader(sampleIR), &stdout, &stderr)

	assert.EqualValuesf(t, code, 2, "exit code")
	assert.Errorf(t, err, "run")
}

func TestRunLayoutInvalidIR(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code, err := run([]string{"diagramlayout"}, strings.NewReader("not json"), &stdout, &stderr)

	assert.EqualValuesf(t, code, 1, "exit code")
	assert.Errorf(t, err, "run")
}

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code, err := run([]string{"diagramlayout", "version"}, strings.NewReader(""), &stdout, &stderr)

	assert.NoErrorf(t, err, "run")
	assert.EqualValuesf(t, code, 0, "exit code")
	assert.Truef(t, stdout.Len() > 0, "version should print something")
}

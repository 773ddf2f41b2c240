package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joshuapare/sarckit/codec"
	"github.com/joshuapare/sarckit/sarc"
)

// fixtureEntries is the content of every archive built by writeFixture.
var fixtureEntries = map[string]string{
	"Layout/lyt/Main.bflyt": "FLYT main layout",
	"Layout/anim/In.bflan":  "FLAN intro",
	"Msg/Common.msbt":       "MsgStdBn common",
	"root.txt":              "hello",
}

// writeFixture saves a sample archive into a temp dir and returns its path.
func writeFixture(t *testing.T, name string, scheme codec.Scheme) string {
	t.Helper()
	a := sarc.New()
	for n, body := range fixtureEntries {
		if err := a.Add(n, []byte(body)); err != nil {
			t.Fatalf("Add(%s): %v", n, err)
		}
	}
	path := filepath.Join(t.TempDir(), name)
	if _, err := a.SaveFile(path, sarc.SaveOptions{Scheme: scheme, Level: 5}); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	return path
}

// resetFlags restores every global flag to its default.
func resetFlags() {
	verbose, quiet, jsonOut, logJSON = false, false, false, false
	packLittle, packAlign, packMultiplier = false, 4, sarc.DefaultHashMultiplier
	packCompress, packLevel, packStrict, packPrefix = "", 9, false, ""
	extractOut, extractJobs = ".", 4
	listDigest = false
	treeDepth, treeSizes = 0, false
	diffAll = false
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	done := make(chan []byte)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		done <- buf.Bytes()
	}()

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout
	return string(<-done), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}

package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"tanaval/internal/request"
)

func TestSarifStructure(t *testing.T) {
	req := invalidImportRequest()

	var buf bytes.Buffer
	err := Sarif(&buf, req, SarifRunMeta{
		ToolName:       "tanaval",
		ToolVersion:    "0.1.0",
		InvocationArgs: []string{"render", "req.json"},
	})
	if err != nil {
		t.Fatalf("Sarif returned error: %v", err)
	}

	var log sarifLog
	if err := json.Unmarshal(buf.Bytes(), &log); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if log.Version != "2.1.0" {
		t.Errorf("version = %q", log.Version)
	}
	if len(log.Runs) != 1 || len(log.Runs[0].Results) != 1 {
		t.Fatalf("expected one run with one result, got %+v", log)
	}

	run := log.Runs[0]
	if run.Tool.Driver.Name != "tanaval" {
		t.Errorf("driver name = %q", run.Tool.Driver.Name)
	}
	if len(run.Invocations) != 1 || !run.Invocations[0].ExecutionSuccessful {
		t.Errorf("unexpected invocations %+v", run.Invocations)
	}

	res := run.Results[0]
	if res.RuleID != "Invalid Import" || res.Level != "error" {
		t.Errorf("unexpected result %+v", res)
	}
	if !strings.Contains(res.Message.Text, "module 'tana/invalid' not found") ||
		!strings.Contains(res.Message.Text, "help: available modules") {
		t.Errorf("message text = %q", res.Message.Text)
	}

	region := res.Locations[0].PhysicalLocation.Region
	if region.StartLine != 1 || region.StartColumn != 26 {
		t.Errorf("unexpected region %+v", region)
	}
	if uri := res.Locations[0].PhysicalLocation.ArtifactLocation.URI; uri != "contract.ts" {
		t.Errorf("uri = %q", uri)
	}
}

func TestSarifAllBatchIsOneDocument(t *testing.T) {
	first := invalidImportRequest()
	second := invalidImportRequest()
	second.FilePath = "other.ts"
	second.Kind = "Type Error"
	second.Line = 3

	var buf bytes.Buffer
	err := SarifAll(&buf, []request.Request{first, second}, SarifRunMeta{ToolName: "tanaval"})
	if err != nil {
		t.Fatalf("SarifAll returned error: %v", err)
	}

	var log sarifLog
	if err := json.Unmarshal(buf.Bytes(), &log); err != nil {
		t.Fatalf("batch output is not one JSON document: %v", err)
	}
	if len(log.Runs) != 1 {
		t.Fatalf("expected one run, got %d", len(log.Runs))
	}
	results := log.Runs[0].Results
	if len(results) != 2 {
		t.Fatalf("expected two results, got %d", len(results))
	}
	if results[0].RuleID != "Invalid Import" || results[1].RuleID != "Type Error" {
		t.Errorf("results out of request order: %+v", results)
	}
	if uri := results[1].Locations[0].PhysicalLocation.ArtifactLocation.URI; uri != "other.ts" {
		t.Errorf("second result uri = %q", uri)
	}
}

func TestSarifNoHelpNoInvocation(t *testing.T) {
	req := invalidImportRequest()
	req.Help = ""

	var buf bytes.Buffer
	if err := Sarif(&buf, req, SarifRunMeta{ToolName: "tanaval"}); err != nil {
		t.Fatalf("Sarif returned error: %v", err)
	}
	if strings.Contains(buf.String(), "help:") {
		t.Error("help paragraph should be absent")
	}
	if strings.Contains(buf.String(), "invocations") {
		t.Error("invocations should be absent without arguments")
	}
}

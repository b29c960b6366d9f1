package diagfmt

import (
	"encoding/json"
	"io"

	"tanaval/internal/request"
)

const (
	sarifVersion = "2.1.0"
	sarifSchema  = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"
)

type sarifLog struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool        sarifTool         `json:"tool"`
	Invocations []sarifInvocation `json:"invocations,omitempty"`
	Results     []sarifResult     `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

type sarifInvocation struct {
	Arguments           []string `json:"arguments,omitempty"`
	ExecutionSuccessful bool     `json:"executionSuccessful"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Region           sarifRegion           `json:"region"`
}

type sarifArtifactLocation struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn"`
}

// Sarif writes the validation error as a SARIF v2.1.0 log with one run.
// Validation errors always map to level "error"; the error kind becomes the
// rule identifier. The message carries the help text on a second paragraph
// when present, since SARIF has no dedicated help slot per result.
func Sarif(w io.Writer, req request.Request, meta SarifRunMeta) error {
	return SarifAll(w, []request.Request{req}, meta)
}

// SarifAll writes many validation errors as one SARIF v2.1.0 log with a
// single run carrying one result per request, in request order. SARIF
// consumers expect one JSON document per stream, so batch rendering must go
// through here instead of concatenating per-request logs.
func SarifAll(w io.Writer, reqs []request.Request, meta SarifRunMeta) error {
	results := make([]sarifResult, 0, len(reqs))
	for _, req := range reqs {
		results = append(results, sarifResultFor(req))
	}

	run := sarifRun{
		Tool: sarifTool{
			Driver: sarifDriver{
				Name:    meta.ToolName,
				Version: meta.ToolVersion,
			},
		},
		Results: results,
	}
	if len(meta.InvocationArgs) > 0 {
		run.Invocations = []sarifInvocation{{
			Arguments:           meta.InvocationArgs,
			ExecutionSuccessful: true,
		}}
	}

	log := sarifLog{
		Schema:  sarifSchema,
		Version: sarifVersion,
		Runs:    []sarifRun{run},
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(log)
}

func sarifResultFor(req request.Request) sarifResult {
	text := req.Message
	if req.Help != "" {
		text += "\n\nhelp: " + req.Help
	}
	return sarifResult{
		RuleID:  req.Kind,
		Level:   "error",
		Message: sarifMessage{Text: text},
		Locations: []sarifLocation{{
			PhysicalLocation: sarifPhysicalLocation{
				ArtifactLocation: sarifArtifactLocation{URI: req.FilePath},
				Region: sarifRegion{
					StartLine:   req.Line,
					StartColumn: req.Column,
				},
			},
		}},
	}
}

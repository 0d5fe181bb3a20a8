// Package report builds, renders and stores exported assessment reports.
package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/mod/semver"

	"github.com/abhisek/iamfit/internal/recommend"
	"github.com/abhisek/iamfit/internal/scoring"
)

// RubricVersion identifies the scoring rubric that produced a report. Reports
// with a different major version are not comparable.
const RubricVersion = "v1.0.0"

// DefaultFilename is the file name offered for a JSON export.
const DefaultFilename = "iam-assessment-results.json"

// ErrIncompatibleVersion is returned when loading a report scored under a
// different rubric major version.
var ErrIncompatibleVersion = errors.New("incompatible rubric version")

// Report is the exported result of one assessment.
type Report struct {
	Scores         scoring.Vector           `json:"scores" yaml:"scores"`
	Recommendation recommend.Recommendation `json:"recommendation" yaml:"recommendation"`
	Timestamp      time.Time                `json:"timestamp" yaml:"timestamp"`
	RubricVersion  string                   `json:"rubricVersion" yaml:"rubricVersion"`
}

// New builds a report for v at time now.
func New(v scoring.Vector, now time.Time) Report {
	return Report{
		Scores:         v,
		Recommendation: recommend.For(v),
		Timestamp:      now.UTC(),
		RubricVersion:  RubricVersion,
	}
}

// Compatible reports whether version shares the current rubric major version.
func Compatible(version string) bool {
	if !semver.IsValid(version) {
		return false
	}
	return semver.Major(version) == semver.Major(RubricVersion)
}

// Parse decodes a JSON report and checks its rubric version. A report
// without a version predates versioning and is read as v1.
func Parse(data []byte) (Report, error) {
	var r Report
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&r); err != nil {
		return Report{}, fmt.Errorf("decode report: %w", err)
	}
	if r.RubricVersion == "" {
		r.RubricVersion = "v1.0.0"
	}
	if !Compatible(r.RubricVersion) {
		return Report{}, fmt.Errorf("%w: %s (want %s)", ErrIncompatibleVersion, r.RubricVersion, semver.Major(RubricVersion))
	}
	return r, nil
}

// Load reads a JSON report from path.
func Load(path string) (Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("read report: %w", err)
	}
	return Parse(data)
}

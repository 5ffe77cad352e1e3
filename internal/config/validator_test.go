package config

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid",
			opts: Options{FileSize: 1024, NumSamples: 1000, Dir: ".testing"},
		},
		{
			name: "zero values allowed",
			opts: Options{FileSize: 0, NumSamples: 0, Dir: "out"},
		},
		{
			name:    "negative file size",
			opts:    Options{FileSize: -1, NumSamples: 1, Dir: "out"},
			wantErr: true,
			errMsg:  "file-size",
		},
		{
			name:    "negative sample count",
			opts:    Options{FileSize: 1, NumSamples: -5, Dir: "out"},
			wantErr: true,
			errMsg:  "num-samples",
		},
		{
			name:    "blank dir",
			opts:    Options{FileSize: 1, NumSamples: 1, Dir: "  "},
			wantErr: true,
			errMsg:  "dir",
		},
		{
			name:    "several problems",
			opts:    Options{FileSize: -1, NumSamples: -1},
			wantErr: true,
			errMsg:  "3 validation errors",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("Error should contain '%s', got: %v", tt.errMsg, err)
			}
		})
	}
}

func TestValidationErrors(t *testing.T) {
	errs := &ValidationErrors{}

	if errs.HasErrors() {
		t.Error("Empty ValidationErrors should not have errors")
	}
	if errs.Error() != "no validation errors" {
		t.Errorf("Error() = %q, want %q", errs.Error(), "no validation errors")
	}

	errs.Add("field1", "message1")
	if errs.Error() != "invalid value for 'field1': message1" {
		t.Errorf("single Error() = %q", errs.Error())
	}

	errs.Add("field2", "message2")
	if !errs.HasErrors() {
		t.Error("ValidationErrors with errors should have errors")
	}

	errStr := errs.Error()
	if !strings.Contains(errStr, "field1") || !strings.Contains(errStr, "field2") {
		t.Errorf("Error string should contain all fields, got: %v", errStr)
	}
	if !strings.Contains(errStr, "2 validation errors") {
		t.Errorf("Error string should mention count, got: %v", errStr)
	}
}

func TestValidationError_NoField(t *testing.T) {
	err := &ValidationError{Message: "test message"}
	if err.Error() != "invalid options: test message" {
		t.Errorf("Error() = %q", err.Error())
	}
}

// Package jsonl encodes diffs for the version-control and chat boundaries
// and loads quoted diffs stored as JSON lines.
package jsonl

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gitbutlerapp/butdiff"
	"github.com/tidwall/gjson"
)

// ErrUnknownDiffType is returned when a UnifiedDiff tag is not recognized.
var ErrUnknownDiffType = errors.New("unknown diff type")

// Wire tags of the UnifiedDiff variants.
const (
	typeBinary   = "Binary"
	typeTooLarge = "TooLarge"
	typePatch    = "Patch"
)

type envelope struct {
	Type    string `json:"type"`
	Subject any    `json:"subject,omitempty"`
}

type tooLargeSubject struct {
	SizeInBytes uint64 `json:"sizeInBytes"`
}

type patchSubject struct {
	Hunks                            []butdiff.DiffHunk `json:"hunks"`
	IsResultOfBinaryToTextConversion bool               `json:"isResultOfBinaryToTextConversion"`
	LinesAdded                       *int               `json:"linesAdded,omitempty"`
	LinesRemoved                     *int               `json:"linesRemoved,omitempty"`
}

// MarshalUnifiedDiff encodes d as {"type": ..., "subject": ...}.
func MarshalUnifiedDiff(d butdiff.UnifiedDiff) ([]byte, error) {
	var env envelope
	switch v := d.(type) {
	case butdiff.Binary:
		env.Type = typeBinary
	case butdiff.TooLarge:
		env.Type = typeTooLarge
		env.Subject = tooLargeSubject{SizeInBytes: v.SizeInBytes}
	case butdiff.Patch:
		hunks := v.Hunks
		if hunks == nil {
			hunks = []butdiff.DiffHunk{}
		}
		env.Type = typePatch
		env.Subject = patchSubject{
			Hunks:                            hunks,
			IsResultOfBinaryToTextConversion: v.IsResultOfBinaryToTextConversion,
			LinesAdded:                       v.LinesAdded,
			LinesRemoved:                     v.LinesRemoved,
		}
	default:
		return nil, fmt.Errorf("marshal diff: %w: %T", ErrUnknownDiffType, d)
	}
	return json.Marshal(env)
}

// UnmarshalUnifiedDiff decodes data produced by MarshalUnifiedDiff.
func UnmarshalUnifiedDiff(data []byte) (butdiff.UnifiedDiff, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("unmarshal diff: invalid JSON")
	}
	tag := gjson.GetBytes(data, "type").String()
	subject := gjson.GetBytes(data, "subject")

	switch tag {
	case typeBinary:
		return butdiff.Binary{}, nil
	case typeTooLarge:
		var s tooLargeSubject
		if err := unmarshalSubject(subject, &s); err != nil {
			return nil, err
		}
		return butdiff.TooLarge{SizeInBytes: s.SizeInBytes}, nil
	case typePatch:
		var s patchSubject
		if err := unmarshalSubject(subject, &s); err != nil {
			return nil, err
		}
		return butdiff.Patch{
			Hunks:                            s.Hunks,
			IsResultOfBinaryToTextConversion: s.IsResultOfBinaryToTextConversion,
			LinesAdded:                       s.LinesAdded,
			LinesRemoved:                     s.LinesRemoved,
		}, nil
	default:
		return nil, fmt.Errorf("unmarshal diff: %w: %q", ErrUnknownDiffType, tag)
	}
}

func unmarshalSubject(subject gjson.Result, v any) error {
	if !subject.Exists() {
		return errors.New("unmarshal diff: missing subject")
	}
	if err := json.Unmarshal([]byte(subject.Raw), v); err != nil {
		return fmt.Errorf("unmarshal diff subject: %w", err)
	}
	return nil
}

package core

import (
	"encoding/json"
	"io"
)

// MarshalResult pretty-prints a result as JSON for humans or pipelines.
// Colors are written as "#RRGGBB".
func MarshalResult(w io.Writer, res Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// MarshalFindings pretty-prints palette audit findings as JSON.
func MarshalFindings(w io.Writer, findings []Finding) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(findings)
}

// UnmarshalResult decodes a result written by MarshalResult.
func UnmarshalResult(r io.Reader) (Result, error) {
	var res Result
	if err := json.NewDecoder(r).Decode(&res); err != nil {
		return Result{}, err
	}
	return res, nil
}

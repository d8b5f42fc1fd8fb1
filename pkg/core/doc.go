// Package core provides a small, stable facade over devtoolbox's WCAG
// contrast engine for external integrations. It re-exports a narrow API
// surface so other programs can depend on a stable import path without
// importing internal packages.
//
// Example:
//
//	res, err := core.Check("#767676", "#fff")
//	if err != nil { /* handle */ }
//	fmt.Printf("%.2f:1 AA=%v\n", res.Ratio, res.Compliance.AANormal)
//	_ = core.MarshalResult(os.Stdout, res)
package core

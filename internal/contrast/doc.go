// Package contrast implements the WCAG 2.x contrast checks used by the
// color-contrast tool: hex color parsing, relative luminance, contrast ratio
// and classification against the AA/AAA thresholds. All functions are pure;
// callers format ratios for display themselves.
package contrast

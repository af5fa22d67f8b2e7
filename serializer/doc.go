// Package serializer compresses a shape's resolved runs into the compact
// differential text encoding consumed by rule checks and AI review.
//
// MergeRuns first collapses adjacent runs whose effective styles are
// identical, then Serialize emits one full-attribute baseline marker followed
// by change-only markers:
//
//	【base-style: family{宋体} size{18} color{#000000} bold{false} italic{false} underline{false} strike{false}】
//	正文【style-change: family{Times New Roman}】Caption
//
// Newlines inside run text become 【br】 markers; literal spaces immediately
// after a break collapse into an 【indent{N}】 marker. The encoding is
// deterministic and attribute-preserving but one-way: it is a diagnostic and
// LLM-input format, not something to parse back into runs.
package serializer

// Package viz turns a flat resource snapshot into the canonical node/edge
// graph behind a topology diagram.
//
// The pipeline runs leaves-first: filter (wildcard exclusion, optional
// compute-only subsetting), stable grouping, node synthesis, edge synthesis
// (topology associations, dependency links, DNS service links), redundant
// bidirectional collapse, graph assembly, and cluster partitioning. Every
// stage is a pure in-memory transform; iteration order is a deterministic
// function of input order throughout, because the emitted document's
// declaration order decides the rendered layout.
package viz

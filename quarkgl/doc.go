// Package quarkgl provides a minimal, predictable software 3D engine.
//
// QuarkGL is intended for visualization: a node graph of articulated parts,
// simple meshes, and an orbiting camera. It is not a game engine and does not
// provide a GPU abstraction.
//
// Pipeline (fixed):
//
//	Node graph → World transforms → Projection → Clipping → Rasterization → Frame output.
//
// World matrices are cached on each Node and only refreshed by Node.UpdateWorld,
// so callers decide when a mutation becomes visible. The renderer is software-only
// and draws into a caller-provided Target.
package quarkgl

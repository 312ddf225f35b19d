// Package skeleton loads URDF robot descriptions into a quarkgl node graph and
// exposes the joints and links to the gait package.
//
// Only primitive visual geometry is drawn. Every link also gets a thin bone
// towards each child joint so mesh-only robots still render as stick figures.
package skeleton

// Package gait classifies the joints of a quadruped skeleton, puts it into a
// standing pose once, and drives a trot animation frame by frame.
//
// Startup is two-phase and owned by Rig:
//
//	rig.OnSkeletonReady(skeleton, root) // classify joints into leg groups
//	rig.InitializePose()                // one-shot standing pose, guarded
//	rig.Tick(dt)                        // every frame
//
// Everything in this package runs on the caller's goroutine; nothing blocks and
// nothing is locked.
package gait

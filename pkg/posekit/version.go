// Package posekit exposes module-level metadata.
package posekit

// Version is the posekit module version.
const Version = "0.1.0"

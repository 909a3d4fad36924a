// Package scene defines the live-world model the posing engine operates on:
// the jointed character hierarchy, freestanding props, and the collaborator
// interfaces (rendering scene, prop factory) that pose application touches.
package scene

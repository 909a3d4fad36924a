// Package pose implements the pose document subsystem: the versioned JSON
// schema for captured poses, serialization of live world state into
// documents, and the two application modes — full destructive apply and
// joints-only preset apply.
package pose

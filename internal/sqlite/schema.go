package sqlite

// Schema DDL for the poses table. The document column holds the pose
// document JSON verbatim; the gallery never reaches inside it with SQL.
const createPoses = `CREATE TABLE poses (
    pose_id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    document TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

const idxPosesName = `CREATE INDEX idx_poses_name ON poses(name);`

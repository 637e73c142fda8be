// Package docload downloads documents over HTTP into local or object storage.
// A download is skipped when its destination already exists, unless the
// caller forces an overwrite. A repository maps logical filenames to paths
// under a base directory.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, fs/, sqlite/, s3/).
package docload

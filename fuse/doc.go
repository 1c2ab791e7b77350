// Package fuse mounts a uprocfs filesystem through go-fuse.
//
// The kernel speaks in inodes while the filesystem core is addressed by
// path. Every node resolves its current path from the go-fuse inode tree
// and forwards the operation to the core, so renames performed through
// the mount keep the tree and the metadata table in step.
//
// # Control files
//
// Control files report a fixed size but produce their content only when
// read. Opens therefore use direct I/O, so the kernel neither caches pages
// nor trusts the reported size. Each open file keeps the response of its
// first read and serves later offsets from it, which lets tools reading
// sequentially reach end of file. A read at offset zero fetches a fresh
// response.
//
// # Namespace
//
// Only the root directory has children. Directories created below it are
// always empty and lookups inside them fail with ENOENT.
package fuse

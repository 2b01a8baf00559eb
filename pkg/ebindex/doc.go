// Package ebindex wires github.com/tgragnato/ebmbtreebench's two elastic
// binary tree variants into the "caller owns node storage" pattern their
// packages require: an Entry embeds the tree node directly and carries a
// minted github.com/segmentio/ksuid.KSUID alongside it, the same
// values-travel-with-the-node shape as pkg/bptree's leaf slots and the
// id-minting pkg/storage.DefaultStorage.Create does on every write.
//
// IntIndex keys entries by a uint32 (eb32); StringIndex keys them by a
// fixed-width byte string (ebmb). Neither type adds locking: concurrent
// mutation is the caller's responsibility, same as the underlying trees.
package ebindex

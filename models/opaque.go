package models

// OpaqueValue is a string alias representing a meta payload value the sync
// core never interprets. It may hold plain text or an encrypted blob in the
// tagged "enc:" format produced by the passphrase encryption module. The
// store, the merge engine, and the remote client treat it as bytes-as-string:
// no parsing, no structural merge, no partial update.
type OpaqueValue string

// Package cache holds the cache provider the resolver reads and writes
// through, and the stores that back it.
//
// Provider namespaces keys and handles JSON encoding. A store only moves
// bytes and enforces expiry:
//
//   - RedisStore keeps entries in Redis hashes laid out the way other
//     distributed-cache clients of the same Redis expect (absexp, sldexp,
//     data), so a fleet can share one cache.
//   - MemoryStore is an in-process ttlcache, the default for a single node.
//   - RistrettoStore is an in-process ristretto cache for large key sets
//     where admission control matters more than exact LRU.
package cache

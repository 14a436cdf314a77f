// Package potfile records secrets recovered for cracked tokens so a token is
// never cracked twice.
//
// Two stores implement the Store interface:
//
//   - FileStore appends "token:secret" lines to a local file, the same layout
//     hashcat and John use for their pot files.
//   - RedisStore keeps entries in a Redis hash (DefaultRedisKey) so a team can
//     share results. Connect opens the client with retries.
//
// Lookup on a token that was never recorded returns ok == false and a nil
// error. Tokens may not contain ':' and neither side may contain a line
// break; such entries are rejected with ErrInvalidEntry.
package potfile

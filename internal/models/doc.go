// Package models defines the records rally keeps for its custody primitives.
//
// # Records
//
//   - User: A registered identity. Its ID is what squads, streams and
//     proposals refer to.
//   - Squad: A shared wallet with an authority, up to 10 members and a
//     spend threshold. Funds sit in the squad's vault address.
//   - PaymentStream: Funds locked by a sender and released to a recipient
//     per second between a start and an end time.
//   - Proposal: A spending proposal members vote on. Its status is computed
//     when read, never stored.
//   - Transfer: One entry of the ledger journal.
//   - Split: An expense one user paid, with the share each debtor owes
//     back. Settling a share moves it through the ledger.
//
// # Addresses
//
// Squads, vaults, streams and proposals are named by deterministic
// addresses derived in package address. Records hold those addresses as
// strings instead of pointers to one another.
//
// # Amounts
//
// Amounts are uint64 smallest units (1 SOL = 10^9 units). Timestamps are
// Unix seconds.
package models

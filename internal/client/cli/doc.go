// Package cli provides the exchange command-line client.
//
// It wires configuration, the local credential store, the API services and
// either an interactive REPL or a single command taken from the process
// arguments. Credentials generated by `register` are cached locally, and a
// cached session token is restored on start.
//
// Commands:
//   - register, login [user_id], logout, forget
//   - balance, list, vaccine
//   - create [name rna private_price [public_price]]
//   - buy <stock_id>, price <stock_id>
//   - monitor <stock_id> (polls the price until Ctrl-C)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli

// Package cli provides the interactive study groups command-line client.
//
// App binds the screen holders (session, profile, group lists, review lists
// and the signup wizards) to a line-oriented REPL. Every command is a thin
// prompt-and-print layer; state lives in the holders.
//
// Key features:
//   - Register with institutional email verification and a resend countdown
//   - Login, social login (with verification for new accounts) and logout
//   - Search, page through, create, join and manage groups
//   - List, post, edit and delete member reviews
//   - View and edit the profile, upload a profile image
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli

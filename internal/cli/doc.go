// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the webqa command line.
//
// Commands:
//
//	webqa [tui]          full-screen chat (default)
//	webqa ask QUESTION   answer one question and exit
//	webqa repl           line-mode chat
//	webqa rules          print the keyword rule table
//	webqa config init    write ~/.webqa/config.toml with defaults
//	webqa config show    print the effective config, API key redacted
//	webqa config path    print the config file location
//	webqa version        print version information
//
// Global flags: --config, --delay, --verbose, --simulate-failure.
package cli

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package seed provides sample-candidate initialization for fresh deployments.

Initialize writes each sample candidate with a conditional put, so calling it
against a store that already holds data creates nothing and reports the
candidates as skipped. Exposed over POST /init.
*/
package seed
